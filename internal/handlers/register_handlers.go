package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/moneykeeper/ledger_backend/internal/core/ports/services"
)

// RegisterAPIRoutes attaches every API handler to the given group.
func RegisterAPIRoutes(rg *gin.RouterGroup, accountService portssvc.AccountService, transferService portssvc.TransferService, organizationService portssvc.OrganizationService) {
	registerAccountRoutes(rg, accountService)
	registerTransferRoutes(rg, transferService)
	registerOrganizationRoutes(rg, organizationService)
	registerValidateRoutes(rg)
}
