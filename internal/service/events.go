package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/InsightsLog/Insights-sub001/internal/queue"
)

// EventPublisher delivers committed membership changes to the audit stream.
type EventPublisher interface {
	Publish(ctx context.Context, event queue.MemberEvent) error
}

type eventEmitter struct {
	publisher EventPublisher
}

// emit publishes after the write has committed. Delivery is best-effort: a
// failure is logged and never changes the outcome of the operation.
func (e eventEmitter) emit(ctx context.Context, event queue.MemberEvent) {
	if e.publisher == nil {
		return
	}

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		event.TraceID = sc.TraceID().String()
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish membership event",
			"error", err,
			"event_type", event.Type,
			"organization_id", event.OrganizationID)
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
