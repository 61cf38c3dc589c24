package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AuditEvent struct {
	ID              int64           `json:"id,string"`
	OrganizationID  uuid.UUID       `json:"organization_id"`
	ActorID         *uuid.UUID      `json:"actor_id,omitempty"`
	SubjectUserID   *uuid.UUID      `json:"subject_user_id,omitempty"`
	EventType       string          `json:"event_type"`
	Payload         json.RawMessage `json:"payload"`
	StreamMessageID string          `json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
}
