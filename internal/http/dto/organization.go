package dto

import (
	"time"

	"github.com/InsightsLog/Insights-sub001/internal/model"
)

// Name and slug are validated by the service so the messages stay consistent
// across transports.
type CreateOrganizationRequest struct {
	Name string  `json:"name"`
	Slug *string `json:"slug,omitempty"`
}

type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID.String(),
		Name:      org.Name,
		Slug:      org.Slug,
		OwnerID:   org.OwnerID.String(),
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

type MyOrganizationResponse struct {
	OrganizationResponse
	Role string `json:"role"`
}

func ToMyOrganizationResponses(orgs []model.OrganizationWithRole) []MyOrganizationResponse {
	resp := make([]MyOrganizationResponse, len(orgs))
	for i := range orgs {
		resp[i] = MyOrganizationResponse{
			OrganizationResponse: *ToOrganizationResponse(&orgs[i].Organization),
			Role:                 string(orgs[i].Role),
		}
	}
	return resp
}

// RoleResponse carries a null role when the caller is not a member.
type RoleResponse struct {
	Role *string `json:"role"`
}
