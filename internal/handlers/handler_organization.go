package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/moneykeeper/ledger_backend/internal/core/ports/services"
	"github.com/moneykeeper/ledger_backend/internal/dto"
	"github.com/moneykeeper/ledger_backend/internal/middleware"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationService portssvc.OrganizationService
}

func newOrganizationHandler(os portssvc.OrganizationService) *organizationHandler {
	return &organizationHandler{organizationService: os}
}

// registerOrganizationRoutes registers routes related to organizations.
func registerOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationService) {
	h := newOrganizationHandler(organizationService)

	organizations := rg.Group("/organizations")
	{
		organizations.GET("", h.listOrganizations)
		organizations.GET("/:id", h.getOrganization)
	}
}

func (h *organizationHandler) getOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization id"})
		return
	}

	org, err := h.organizationService.GetOrganizationByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("organization_id", id)), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(*org))
}

func (h *organizationHandler) listOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orgs, err := h.organizationService.ListOrganizations(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": dto.ToOrganizationResponses(orgs)})
}
