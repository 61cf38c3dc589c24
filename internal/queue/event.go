package queue

import (
	"github.com/google/uuid"
)

// EventType names a membership change carried on the events stream.
type EventType string

const (
	EventOrganizationCreated  EventType = "organization.created"
	EventOwnershipTransferred EventType = "organization.ownership_transferred"
	EventMemberInvited        EventType = "member.invited"
	EventMemberJoined         EventType = "member.joined"
	EventMemberRoleUpdated    EventType = "member.role_updated"
	EventMemberRemoved        EventType = "member.removed"
	EventMemberLeft           EventType = "member.left"
	EventInviteCreated        EventType = "invite.created"
	EventInviteRevoked        EventType = "invite.revoked"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventOrganizationCreated, EventOwnershipTransferred,
		EventMemberInvited, EventMemberJoined, EventMemberRoleUpdated,
		EventMemberRemoved, EventMemberLeft,
		EventInviteCreated, EventInviteRevoked:
		return true
	}
	return false
}

// MemberEvent records one committed membership change.
type MemberEvent struct {
	Type           EventType
	OrganizationID uuid.UUID
	ActorID        *uuid.UUID
	SubjectUserID  *uuid.UUID
	// Details is stored verbatim as the audit payload.
	Details map[string]string
	TraceID string
	Attempt int
}
