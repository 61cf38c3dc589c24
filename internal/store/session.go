package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type sessionStore struct {
	queries *sqlc.Queries
}

func newSessionStore(queries *sqlc.Queries) SessionStore {
	return &sessionStore{queries: queries}
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	row, err := s.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		ID:              session.ID,
		UserID:          session.UserID,
		TokenHash:       session.TokenHash,
		WorkosSessionID: session.WorkOSSessionID,
		ExpiresAt:       pgtype.Timestamptz{Time: session.ExpiresAt, Valid: true},
	})
	if err != nil {
		return mapError(err)
	}
	*session = *toSessionModel(row)
	return nil
}

func (s *sessionStore) GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	row, err := s.queries.GetValidSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, mapError(err)
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return mapError(s.queries.DeleteSessionByTokenHash(ctx, tokenHash))
}

func toSessionModel(row sqlc.Session) *model.Session {
	return &model.Session{
		ID:              row.ID,
		UserID:          row.UserID,
		TokenHash:       row.TokenHash,
		WorkOSSessionID: row.WorkosSessionID,
		ExpiresAt:       row.ExpiresAt.Time,
		CreatedAt:       row.CreatedAt.Time,
	}
}
