package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Publish(ctx context.Context, event MemberEvent) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event MemberEvent) error {
	if event.Attempt <= 0 {
		event.Attempt = 1
	}

	values, err := eventValues(event)
	if err != nil {
		return err
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.DebugContext(ctx, "published membership event",
		"event_type", event.Type,
		"organization_id", event.OrganizationID,
		"attempt", event.Attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

func eventValues(event MemberEvent) (map[string]any, error) {
	values := map[string]any{
		"event_type":      string(event.Type),
		"organization_id": event.OrganizationID.String(),
		"attempt":         event.Attempt,
	}

	if event.ActorID != nil {
		values["actor_id"] = event.ActorID.String()
	}
	if event.SubjectUserID != nil {
		values["subject_user_id"] = event.SubjectUserID.String()
	}
	if len(event.Details) > 0 {
		details, err := json.Marshal(event.Details)
		if err != nil {
			return nil, fmt.Errorf("encoding event details: %w", err)
		}
		values["details"] = string(details)
	}
	if event.TraceID != "" {
		values["trace_id"] = event.TraceID
	}

	return values, nil
}
