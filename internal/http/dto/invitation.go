package dto

import (
	"time"

	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type CreateInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token" binding:"required"`
}

type InvitationResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
}

func ToInvitationResponse(inv *model.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:             inv.ID.String(),
		OrganizationID: inv.OrganizationID.String(),
		Email:          inv.Email,
		Role:           string(inv.Role),
		Status:         string(inv.Status),
		ExpiresAt:      inv.ExpiresAt,
		CreatedAt:      inv.CreatedAt,
		AcceptedAt:     inv.AcceptedAt,
	}
}

func ToInvitationResponses(invitations []model.Invitation) []InvitationResponse {
	resp := make([]InvitationResponse, len(invitations))
	for i := range invitations {
		resp[i] = *ToInvitationResponse(&invitations[i])
	}
	return resp
}

type CreateInvitationResponse struct {
	InvitationResponse
	InviteURL string `json:"invite_url"`
}

type ValidateInvitationResponse struct {
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	ExpiresAt      time.Time `json:"expires_at"`
}
