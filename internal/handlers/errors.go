package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneykeeper/ledger_backend/internal/apperrors"
)

// respondError maps the error taxonomy onto HTTP responses:
// ValidationError to 400 with the offending field, ConflictError to 409
// with field diagnostics, ErrNotFound to 404, anything else to an
// opaque 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		logger.Warn("Validation error", slog.String("field", verr.Field), slog.String("message", verr.Message))
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	}

	var cerr *apperrors.ConflictError
	if errors.As(err, &cerr) {
		logger.Warn("Constraint violation", slog.String("error", cerr.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Error(), "fields": cerr.Fields})
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	logger.Error("Request failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
