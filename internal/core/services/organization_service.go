package services

import (
	"context"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	portsrepo "github.com/moneykeeper/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/moneykeeper/ledger_backend/internal/core/ports/services"
)

// OrganizationService exposes read access to organizations. Creation
// happens implicitly at the persistence boundary, when an account
// references an organization that does not exist yet.
type OrganizationService struct {
	organizationRepo portsrepo.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepository) *OrganizationService {
	return &OrganizationService{organizationRepo: organizationRepo}
}

var _ portssvc.OrganizationService = (*OrganizationService)(nil)

func (s *OrganizationService) GetOrganizationByID(ctx context.Context, id int64) (*domain.Organization, error) {
	return s.organizationRepo.FindOrganizationByID(ctx, id)
}

func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.organizationRepo.ListOrganizations(ctx)
}
