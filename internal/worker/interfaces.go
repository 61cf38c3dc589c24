package worker

import (
	"context"

	"github.com/InsightsLog/Insights-sub001/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// AuditRecorder persists a membership event. Mirrors service.AuditService.
type AuditRecorder interface {
	Record(ctx context.Context, messageID string, event queue.MemberEvent) (bool, error)
}
