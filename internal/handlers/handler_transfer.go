package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/moneykeeper/ledger_backend/internal/core/ports/services"
	"github.com/moneykeeper/ledger_backend/internal/dto"
	"github.com/moneykeeper/ledger_backend/internal/middleware"
)

// transferHandler handles HTTP requests that move money between accounts.
type transferHandler struct {
	transferService portssvc.TransferService
}

func newTransferHandler(ts portssvc.TransferService) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers transfer routes.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferService) {
	h := newTransferHandler(transferService)
	rg.POST("/transfers", h.createTransfer)
}

func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received transfer request",
		slog.Int64("source_id", req.SourceID),
		slog.Int64("target_id", req.TargetID),
		slog.String("value", req.Value.String()),
	)

	debit, credit, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transfer committed", slog.String("uuid", debit.UUID.String()))
	c.JSON(http.StatusCreated, dto.TransferResponse{
		Debit:  dto.ToTransactionResponse(debit),
		Credit: dto.ToTransactionResponse(credit),
	})
}
