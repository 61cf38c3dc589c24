package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner        Role = "owner"
	RoleAdmin        Role = "admin"
	RoleBillingAdmin Role = "billing_admin"
	RoleMember       Role = "member"
)

// Rank orders roles for listing: owner first, plain members last.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 0
	case RoleAdmin:
		return 1
	case RoleBillingAdmin:
		return 2
	default:
		return 3
	}
}

// CanManageMembers reports whether the role may invite, remove or re-role members.
func (r Role) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

// OrganizationMember is a membership row joined with the member's profile.
type OrganizationMember struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	UserID         uuid.UUID  `json:"user_id"`
	Role           Role       `json:"role"`
	InvitedAt      time.Time  `json:"invited_at"`
	JoinedAt       *time.Time `json:"joined_at,omitempty"`
	Email          string     `json:"email"`
	DisplayName    *string    `json:"display_name,omitempty"`
}
