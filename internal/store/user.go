package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row, err := s.queries.GetProfile(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, mapError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpsertProfileByWorkOSID(ctx, sqlc.UpsertProfileByWorkOSIDParams{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarUrl:   user.AvatarURL,
		WorkosID:    user.WorkOSID,
	})
	if err != nil {
		return mapError(err)
	}
	*user = *toUserModel(row)
	return nil
}

func toUserModel(row sqlc.Profile) *model.User {
	return &model.User{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		AvatarURL:   row.AvatarUrl,
		WorkOSID:    row.WorkosID,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
