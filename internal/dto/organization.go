package dto

import "github.com/moneykeeper/ledger_backend/internal/core/domain"

// OrganizationPayload references an organization in a request. Either
// an id of an existing organization or a name/shortcut pair for
// get-or-create resolution at the persistence boundary.
type OrganizationPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"omitempty,max=50"`
	Shortcut string `json:"shortcut" binding:"omitempty,max=10"`
}

// ToDomain converts the payload.
func (p OrganizationPayload) ToDomain() domain.Organization {
	return domain.Organization{ID: p.ID, Name: p.Name, Shortcut: p.Shortcut}
}

// OrganizationResponse mirrors domain.Organization.
type OrganizationResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Shortcut string `json:"shortcut"`
}

// ToOrganizationResponse converts a domain.Organization to its response DTO.
func ToOrganizationResponse(o domain.Organization) OrganizationResponse {
	return OrganizationResponse{ID: o.ID, Name: o.Name, Shortcut: o.Shortcut}
}

// ToOrganizationResponses converts a slice of organizations.
func ToOrganizationResponses(os []domain.Organization) []OrganizationResponse {
	res := make([]OrganizationResponse, len(os))
	for i, o := range os {
		res[i] = ToOrganizationResponse(o)
	}
	return res
}
