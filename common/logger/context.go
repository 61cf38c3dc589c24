package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and workers enrich the context once; every slog call made with that
// context then carries organization_id, user_id and friends without repeating them.
type LogFields struct {
	OrganizationID *string // Organization UUID
	MemberID       *string // Organization member UUID
	UserID         *string // Caller profile UUID
	MessageID      *string // Redis stream message ID
	EventType      *string // Membership event type (e.g. "member.removed")
	Component      string  // Component name, e.g. "insights.worker.audit"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.OrganizationID != nil {
		result.OrganizationID = new.OrganizationID
	}
	if new.MemberID != nil {
		result.MemberID = new.MemberID
	}
	if new.UserID != nil {
		result.UserID = new.UserID
	}
	if new.MessageID != nil {
		result.MessageID = new.MessageID
	}
	if new.EventType != nil {
		result.EventType = new.EventType
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(id.String())})
func Ptr[T any](v T) *T {
	return &v
}
