package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/InsightsLog/Insights-sub001/common/id"
	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/queue"
	"github.com/InsightsLog/Insights-sub001/internal/store"
)

const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 500
)

// AuditService persists membership events and serves them to admin tooling.
type AuditService interface {
	// Record stores event once per stream message; replays report false.
	Record(ctx context.Context, messageID string, event queue.MemberEvent) (bool, error)
	List(ctx context.Context, orgID string, limit int) ([]model.AuditEvent, error)
}

type auditService struct {
	auditStore store.AuditEventStore
}

func NewAuditService(auditStore store.AuditEventStore) AuditService {
	return &auditService{auditStore: auditStore}
}

func (s *auditService) Record(ctx context.Context, messageID string, event queue.MemberEvent) (bool, error) {
	details := event.Details
	if details == nil {
		details = map[string]string{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return false, fmt.Errorf("encoding audit payload: %w", err)
	}

	inserted, err := s.auditStore.Create(ctx, &model.AuditEvent{
		ID:              id.New(),
		OrganizationID:  event.OrganizationID,
		ActorID:         event.ActorID,
		SubjectUserID:   event.SubjectUserID,
		EventType:       string(event.Type),
		Payload:         payload,
		StreamMessageID: messageID,
	})
	if err != nil {
		return false, fmt.Errorf("creating audit event: %w", err)
	}

	if !inserted {
		slog.InfoContext(ctx, "audit event already recorded", "message_id", messageID)
	}
	return inserted, nil
}

func (s *auditService) List(ctx context.Context, orgID string, limit int) ([]model.AuditEvent, error) {
	organizationID, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		limit = MaxAuditLimit
	}

	events, err := s.auditStore.ListByOrganization(ctx, organizationID, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}
	return events, nil
}
