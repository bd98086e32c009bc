package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"reddit-persona/internal/service"
)

// AuthHandler intercambia la api key configurada por un access token.
type AuthHandler struct {
	logger     *zap.Logger
	jwtSvc     *service.JWTService
	apiKeyHash []byte
}

func NewAuthHandler(logger *zap.Logger, jwtSvc *service.JWTService, apiKeyHash string) *AuthHandler {
	return &AuthHandler{
		logger:     logger,
		jwtSvc:     jwtSvc,
		apiKeyHash: []byte(apiKeyHash),
	}
}

// IssueToken maneja POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		APIKey     string `json:"api_key" binding:"required"`
		ClientName string `json:"client_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if len(h.apiKeyHash) == 0 || h.jwtSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.apiKeyHash, []byte(req.APIKey)); err != nil {
		h.logger.Warn("api key rejected", zap.String("client_name", req.ClientName))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
		return
	}

	clientName := req.ClientName
	if clientName == "" {
		clientName = "api-client"
	}

	token, err := h.jwtSvc.GenerateAccessToken(clientName)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, token)
}
