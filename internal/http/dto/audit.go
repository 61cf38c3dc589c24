package dto

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type AuditEventResponse struct {
	ID            string          `json:"id"`
	EventType     string          `json:"event_type"`
	ActorID       *string         `json:"actor_id,omitempty"`
	SubjectUserID *string         `json:"subject_user_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToAuditEventResponses(events []model.AuditEvent) []AuditEventResponse {
	resp := make([]AuditEventResponse, len(events))
	for i, e := range events {
		resp[i] = AuditEventResponse{
			ID:        strconv.FormatInt(e.ID, 10),
			EventType: e.EventType,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		}
		if e.ActorID != nil {
			resp[i].ActorID = ptr(e.ActorID.String())
		}
		if e.SubjectUserID != nil {
			resp[i].SubjectUserID = ptr(e.SubjectUserID.String())
		}
	}
	return resp
}

func ptr(s string) *string {
	return &s
}
