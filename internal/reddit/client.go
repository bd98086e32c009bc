package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"reddit-persona/internal/domain"
)

const (
	defaultBaseURL   = "https://www.reddit.com"
	defaultUserAgent = "reddit-persona/1.0 (research tool)"
	pageSize         = 100

	// Tope de paginas por listado: un servidor que devuelve `after` no vacio
	// indefinidamente no debe dejarnos en un loop infinito.
	maxListingPages = 10
)

// Client consume el API JSON publico de Reddit: submitted y comments de un
// usuario, con paginacion por `after` y rate limiting del lado cliente.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewClient construye el cliente. requestInterval separa requests
// consecutivos (Reddit castiga el scraping agresivo); 0 usa 2s.
func NewClient(baseURL, userAgent string, requestInterval time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if requestInterval <= 0 {
		requestInterval = 2 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(requestInterval), 1),
		logger:    logger,
	}
}

// FetchItems descarga posts y comentarios del usuario, descarta contenido
// borrado y devuelve hasta `limit` items de cada tipo, ordenados del mas
// nuevo al mas viejo.
func (c *Client) FetchItems(ctx context.Context, username string, limit int) ([]domain.EvidenceItem, error) {
	if username == "" {
		return nil, fmt.Errorf("fetch items: empty username")
	}
	if limit <= 0 {
		limit = pageSize
	}

	posts, err := c.fetchListing(ctx, username, "submitted", domain.EvidenceKindPost, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch posts for %s: %w", username, err)
	}
	comments, err := c.fetchListing(ctx, username, "comments", domain.EvidenceKindComment, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", username, err)
	}

	items := append(posts, comments...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (c *Client) fetchListing(ctx context.Context, username, feed, kind string, limit int) ([]domain.EvidenceItem, error) {
	var (
		items []domain.EvidenceItem
		after string
	)

	for pages := 0; len(items) < limit && pages < maxListingPages; pages++ {
		page, next, err := c.fetchPage(ctx, username, feed, kind, after)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if next == "" {
			break
		}
		after = next
	}

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, username, feed, kind, after string) ([]domain.EvidenceItem, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}
	endpoint := fmt.Sprintf("%s/user/%s/%s.json?%s", c.baseURL, url.PathEscape(username), feed, q.Encode())

	c.logger.Debug("fetching listing page",
		zap.String("username", username),
		zap.String("feed", feed),
		zap.String("after", after),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", fmt.Errorf("user %s not found", username)
	}
	if resp.StatusCode >= 400 {
		c.logger.Warn("reddit api error",
			zap.Int("status", resp.StatusCode),
			zap.String("feed", feed),
		)
		return nil, "", fmt.Errorf("reddit http error: status=%d", resp.StatusCode)
	}

	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, "", fmt.Errorf("unmarshal listing: %w", err)
	}

	items := make([]domain.EvidenceItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		item, ok := mapChild(c.baseURL, child.Data, kind)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, listing.Data.After, nil
}

// mapChild normaliza una entrada del listing. Contenido borrado o vacio se
// descarta aqui igual que en el original; el motor vuelve a protegerse por
// su cuenta.
func mapChild(baseURL string, data childData, kind string) (domain.EvidenceItem, bool) {
	body := data.Selftext
	if kind == domain.EvidenceKindComment {
		body = data.Body
	}
	switch body {
	case "", "[deleted]", "[removed]":
		return domain.EvidenceItem{}, false
	}

	title := ""
	if kind == domain.EvidenceKindPost {
		title = data.Title
	}

	return domain.EvidenceItem{
		ID:        data.Name,
		Kind:      kind,
		Title:     title,
		Body:      body,
		Subreddit: data.Subreddit,
		Score:     data.Score,
		CreatedAt: time.Unix(int64(data.CreatedUTC), 0).UTC(),
		SourceURL: baseURL + data.Permalink,
	}, true
}

type listingResponse struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data childData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type childData struct {
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Body       string  `json:"body"`
	Subreddit  string  `json:"subreddit"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
}
