package dto

import (
	"time"

	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type InviteMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role"`
}

type TransferOwnershipRequest struct {
	NewOwnerUserID string `json:"new_owner_user_id"`
}

type MemberResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	UserID         string     `json:"user_id"`
	Role           string     `json:"role"`
	Email          string     `json:"email"`
	DisplayName    *string    `json:"display_name,omitempty"`
	InvitedAt      time.Time  `json:"invited_at"`
	JoinedAt       *time.Time `json:"joined_at,omitempty"`
}

func ToMemberResponse(m *model.OrganizationMember) *MemberResponse {
	return &MemberResponse{
		ID:             m.ID.String(),
		OrganizationID: m.OrganizationID.String(),
		UserID:         m.UserID.String(),
		Role:           string(m.Role),
		Email:          m.Email,
		DisplayName:    m.DisplayName,
		InvitedAt:      m.InvitedAt,
		JoinedAt:       m.JoinedAt,
	}
}

func ToMemberResponses(members []model.OrganizationMember) []MemberResponse {
	resp := make([]MemberResponse, len(members))
	for i := range members {
		resp[i] = *ToMemberResponse(&members[i])
	}
	return resp
}
