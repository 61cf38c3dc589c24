package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	// Token is the cookie value. It is only set on the session returned at
	// login; the database keeps TokenHash.
	Token           string  `json:"-"`
	TokenHash       string  `json:"-"`
	WorkOSSessionID *string `json:"workos_session_id,omitempty"`
}
