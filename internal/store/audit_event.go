package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type auditEventStore struct {
	queries *sqlc.Queries
}

func newAuditEventStore(queries *sqlc.Queries) AuditEventStore {
	return &auditEventStore{queries: queries}
}

func (s *auditEventStore) Create(ctx context.Context, event *model.AuditEvent) (bool, error) {
	payload := []byte(event.Payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	n, err := s.queries.CreateAuditEvent(ctx, sqlc.CreateAuditEventParams{
		ID:              event.ID,
		OrganizationID:  event.OrganizationID,
		ActorID:         event.ActorID,
		SubjectUserID:   event.SubjectUserID,
		EventType:       event.EventType,
		Payload:         payload,
		StreamMessageID: event.StreamMessageID,
	})
	if err != nil {
		return false, mapError(err)
	}
	return n > 0, nil
}

func (s *auditEventStore) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit int32) ([]model.AuditEvent, error) {
	rows, err := s.queries.ListAuditEventsByOrganization(ctx, sqlc.ListAuditEventsByOrganizationParams{
		OrganizationID: orgID,
		Limit:          limit,
	})
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]model.AuditEvent, len(rows))
	for i, row := range rows {
		result[i] = model.AuditEvent{
			ID:              row.ID,
			OrganizationID:  row.OrganizationID,
			ActorID:         row.ActorID,
			SubjectUserID:   row.SubjectUserID,
			EventType:       row.EventType,
			Payload:         row.Payload,
			StreamMessageID: row.StreamMessageID,
			CreatedAt:       row.CreatedAt.Time,
		}
	}
	return result, nil
}
