package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/moneykeeper/ledger_backend/internal/dto"
	"github.com/moneykeeper/ledger_backend/internal/middleware"
	"github.com/moneykeeper/ledger_backend/pkg/config"
)

// authHandler issues bearer tokens for API clients.
type authHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new authHandler.
func NewAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// Token exchanges the configured client credentials for a signed JWT.
func (h *authHandler) Token(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.cfg.APIClientSecret)) != 1 {
		logger.Warn("Token request with invalid client secret", slog.String("client_id", req.ClientID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid client credentials"})
		return
	}

	expiresAt := time.Now().Add(h.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   req.ClientID,
		Issuer:    h.cfg.JWTIssuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
