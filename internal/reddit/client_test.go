package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"reddit-persona/internal/domain"
)

type fakeChild struct {
	Name       string  `json:"name"`
	Title      string  `json:"title,omitempty"`
	Selftext   string  `json:"selftext,omitempty"`
	Body       string  `json:"body,omitempty"`
	Subreddit  string  `json:"subreddit"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
}

func listingJSON(after string, children ...fakeChild) []byte {
	type wrapped struct {
		Data fakeChild `json:"data"`
	}
	wrappedChildren := make([]wrapped, len(children))
	for i, c := range children {
		wrappedChildren[i] = wrapped{Data: c}
	}
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"after":    after,
			"children": wrappedChildren,
		},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, "test-agent", time.Millisecond, zap.NewNop())
	return client, server
}

func TestFetchItems_MapsAndSortsNewestFirst(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/kojied/submitted.json":
			w.Write(listingJSON("",
				fakeChild{Name: "t3_old", Title: "older post", Selftext: "post body", Subreddit: "golang", Score: 7, CreatedUTC: 1000, Permalink: "/r/golang/comments/old/"},
			))
		case "/user/kojied/comments.json":
			w.Write(listingJSON("",
				fakeChild{Name: "t1_new", Body: "newer comment", Subreddit: "python", Score: 3, CreatedUTC: 2000, Permalink: "/r/python/comments/new/"},
			))
		default:
			http.NotFound(w, r)
		}
	})

	items, err := client.FetchItems(context.Background(), "kojied", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "t1_new" || items[0].Kind != domain.EvidenceKindComment {
		t.Fatalf("expected newest comment first, got %+v", items[0])
	}
	if items[0].Title != "" {
		t.Fatalf("comments must carry empty title, got %q", items[0].Title)
	}
	if items[1].Title != "older post" || items[1].Body != "post body" {
		t.Fatalf("unexpected post mapping: %+v", items[1])
	}
	if items[1].SourceURL != server.URL+"/r/golang/comments/old/" {
		t.Fatalf("unexpected source url: %q", items[1].SourceURL)
	}
}

func TestFetchItems_SkipsDeletedAndRemoved(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/kojied/submitted.json":
			w.Write(listingJSON(""))
		case "/user/kojied/comments.json":
			w.Write(listingJSON("",
				fakeChild{Name: "t1_a", Body: "[deleted]", CreatedUTC: 1, Permalink: "/a/"},
				fakeChild{Name: "t1_b", Body: "[removed]", CreatedUTC: 2, Permalink: "/b/"},
				fakeChild{Name: "t1_c", Body: "", CreatedUTC: 3, Permalink: "/c/"},
				fakeChild{Name: "t1_d", Body: "kept", CreatedUTC: 4, Permalink: "/d/"},
			))
		default:
			http.NotFound(w, r)
		}
	})

	items, err := client.FetchItems(context.Background(), "kojied", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "t1_d" {
		t.Fatalf("expected only the kept comment, got %+v", items)
	}
}

func TestFetchItems_PaginatesWithAfter(t *testing.T) {
	var submittedCalls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/kojied/submitted.json":
			submittedCalls++
			if r.URL.Query().Get("after") == "" {
				children := make([]fakeChild, 100)
				for i := range children {
					children[i] = fakeChild{
						Name: fmt.Sprintf("t3_p%d", i), Selftext: "body",
						CreatedUTC: float64(1000 + i), Permalink: fmt.Sprintf("/p%d/", i),
					}
				}
				w.Write(listingJSON("t3_p99", children...))
				return
			}
			w.Write(listingJSON("",
				fakeChild{Name: "t3_tail", Selftext: "tail body", CreatedUTC: 2000, Permalink: "/tail/"},
			))
		case "/user/kojied/comments.json":
			w.Write(listingJSON(""))
		default:
			http.NotFound(w, r)
		}
	})

	items, err := client.FetchItems(context.Background(), "kojied", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if submittedCalls != 2 {
		t.Fatalf("expected 2 submitted pages, got %d", submittedCalls)
	}
	if len(items) != 101 {
		t.Fatalf("expected 101 items, got %d", len(items))
	}
}

func TestFetchItems_TruncatesToLimit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/kojied/submitted.json":
			children := make([]fakeChild, 100)
			for i := range children {
				children[i] = fakeChild{
					Name: fmt.Sprintf("t3_p%d", i), Selftext: "body",
					CreatedUTC: float64(1000 + i), Permalink: fmt.Sprintf("/p%d/", i),
				}
			}
			w.Write(listingJSON("", children...))
		case "/user/kojied/comments.json":
			w.Write(listingJSON(""))
		default:
			http.NotFound(w, r)
		}
	})

	items, err := client.FetchItems(context.Background(), "kojied", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected limit of 10 items, got %d", len(items))
	}
}

func TestFetchItems_StopsOnRunawayAfterCursor(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		// Cursor `after` no vacio con cero children: paginacion rota que nunca
		// avanza.
		w.Write(listingJSON("t3_loop"))
	})

	items, err := client.FetchItems(context.Background(), "kojied", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
	if calls > 2*maxListingPages {
		t.Fatalf("expected bounded pagination, got %d requests", calls)
	}
}

func TestFetchItems_UserNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	if _, err := client.FetchItems(context.Background(), "ghost", 10); err == nil {
		t.Fatal("expected error for missing user")
	}
}

func TestFetchItems_SendsUserAgent(t *testing.T) {
	var gotAgent string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write(listingJSON(""))
	})

	if _, err := client.FetchItems(context.Background(), "kojied", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAgent != "test-agent" {
		t.Fatalf("expected custom user agent, got %q", gotAgent)
	}
}
