package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reddit-persona/internal/reddit"
	"reddit-persona/internal/service"
)

// PersonaHandler expone la generacion de personas sobre HTTP.
type PersonaHandler struct {
	logger    *zap.Logger
	fetcher   reddit.Fetcher
	assembler *service.Assembler
	maxLimit  int
}

func NewPersonaHandler(logger *zap.Logger, fetcher reddit.Fetcher, assembler *service.Assembler, maxLimit int) *PersonaHandler {
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &PersonaHandler{
		logger:    logger,
		fetcher:   fetcher,
		assembler: assembler,
		maxLimit:  maxLimit,
	}
}

// GeneratePersona maneja POST /personas.
func (h *PersonaHandler) GeneratePersona(c *gin.Context) {
	var req struct {
		ProfileURL string `json:"profile_url"`
		Username   string `json:"username"`
		Limit      int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid persona request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		parsed, err := reddit.ParseProfileURL(req.ProfileURL)
		if err != nil {
			h.logger.Warn("invalid profile url", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile url"})
			return
		}
		username = parsed
	}

	limit := req.Limit
	if limit <= 0 || limit > h.maxLimit {
		limit = h.maxLimit
	}

	items, err := h.fetcher.FetchItems(c.Request.Context(), username, limit)
	if err != nil {
		h.logger.Error("fetching reddit items failed",
			zap.String("username", username),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch profile data"})
		return
	}

	persona := h.assembler.Assemble(username, items)

	h.logger.Info("persona generated",
		zap.String("username", username),
		zap.String("persona_id", persona.ID),
		zap.Int("item_count", persona.ItemCount),
	)
	c.JSON(http.StatusOK, persona)
}
