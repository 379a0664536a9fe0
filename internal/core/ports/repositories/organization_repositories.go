package repositories

import (
	"context"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
)

// OrganizationRepository is the persistence boundary for organizations.
// Organizations are shared references: accounts point at them by id and
// never own them.
type OrganizationRepository interface {
	FindOrganizationByID(ctx context.Context, id int64) (*domain.Organization, error)

	// FindOrganizationByName matches the name case-insensitively.
	FindOrganizationByName(ctx context.Context, name string) (*domain.Organization, error)

	// ListOrganizations returns all organizations ordered by name.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}
