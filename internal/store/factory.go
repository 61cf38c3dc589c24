package store

import (
	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}

func (s *Stores) Members() MemberStore {
	return newMemberStore(s.queries)
}

func (s *Stores) Invitations() InvitationStore {
	return newInvitationStore(s.queries)
}

func (s *Stores) AuditEvents() AuditEventStore {
	return newAuditEventStore(s.queries)
}
