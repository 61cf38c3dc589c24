package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/InsightsLog/Insights-sub001/internal/model"
)

// UserStore defines the contract for profile data access
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error) // case-insensitive
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) // checks expiry
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Organization, error) // row lock until commit
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, org *model.Organization) error
	UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Organization, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.OrganizationWithRole, error)
}

// MemberStore defines the contract for organization membership data access.
// Reads return members joined with their profile.
type MemberStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrganizationMember, error)
	GetByUser(ctx context.Context, orgID, userID uuid.UUID) (*model.OrganizationMember, error)
	Create(ctx context.Context, orgID, userID uuid.UUID, role model.Role) (*model.OrganizationMember, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.OrganizationMember, error)
}

// InvitationStore defines the contract for token invitation data access
type InvitationStore interface {
	Create(ctx context.Context, inv *model.Invitation) error
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	GetValidByToken(ctx context.Context, token string) (*model.Invitation, error) // pending and not expired
	GetPendingByEmail(ctx context.Context, orgID uuid.UUID, email string) (*model.Invitation, error)
	Accept(ctx context.Context, id, userID uuid.UUID) (*model.Invitation, error)
	Revoke(ctx context.Context, orgID, id uuid.UUID) (*model.Invitation, error)
	ListPending(ctx context.Context, orgID uuid.UUID) ([]model.Invitation, error)
}

// AuditEventStore defines the contract for the organization audit log
type AuditEventStore interface {
	// Create inserts the event and reports false when its stream message was
	// already recorded.
	Create(ctx context.Context, event *model.AuditEvent) (bool, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, limit int32) ([]model.AuditEvent, error)
}
