package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneykeeper/ledger_backend/internal/dto"
	"github.com/moneykeeper/ledger_backend/internal/middleware"
	"github.com/moneykeeper/ledger_backend/internal/validation"
)

// registerValidateRoutes registers the standalone field validation
// endpoint used by front-ends that collect input one field at a time.
func registerValidateRoutes(rg *gin.RouterGroup) {
	rg.POST("/validate", validateField)
}

func validateField(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for validateField", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	schema, ok := validation.SchemaByName(req.Schema)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown schema: " + req.Schema})
		return
	}

	res := dto.ValidateFieldResponse{Valid: true, Field: req.Field}
	if verr := validation.ValidateField(schema, req.Field, req.Value); verr != nil {
		res.Valid = false
		res.Message = verr.Message
	}
	c.JSON(http.StatusOK, res)
}
