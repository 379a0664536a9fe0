package services

import (
	"context"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
)

// OrganizationService exposes organization lookups.
type OrganizationService interface {
	GetOrganizationByID(ctx context.Context, id int64) (*domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}
