package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) GetByID(ctx context.Context, id uuid.UUID) (*model.OrganizationMember, error) {
	row, err := s.queries.GetOrganizationMember(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) GetByUser(ctx context.Context, orgID, userID uuid.UUID) (*model.OrganizationMember, error) {
	row, err := s.queries.GetOrganizationMemberByUser(ctx, sqlc.GetOrganizationMemberByUserParams{
		OrganizationID: orgID,
		UserID:         userID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toMemberModel(sqlc.GetOrganizationMemberRow(row)), nil
}

// Create inserts a joined membership and returns it with the member's profile.
func (s *memberStore) Create(ctx context.Context, orgID, userID uuid.UUID, role model.Role) (*model.OrganizationMember, error) {
	row, err := s.queries.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           string(role),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.GetByID(ctx, row.ID)
}

// UpdateRole returns ErrNotFound when the row is missing or row security
// hides it from the caller.
func (s *memberStore) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error {
	_, err := s.queries.UpdateOrganizationMemberRole(ctx, sqlc.UpdateOrganizationMemberRoleParams{
		Role: string(role),
		ID:   id,
	})
	return mapError(err)
}

func (s *memberStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.queries.DeleteOrganizationMember(ctx, id)
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *memberStore) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.OrganizationMember, error) {
	rows, err := s.queries.ListOrganizationMembers(ctx, orgID)
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]model.OrganizationMember, len(rows))
	for i, row := range rows {
		result[i] = *toMemberModel(sqlc.GetOrganizationMemberRow(row))
	}
	return result, nil
}

func toMemberModel(row sqlc.GetOrganizationMemberRow) *model.OrganizationMember {
	return &model.OrganizationMember{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		UserID:         row.UserID,
		Role:           model.Role(row.Role),
		InvitedAt:      row.InvitedAt.Time,
		JoinedAt:       timePtr(row.JoinedAt),
		Email:          row.Email,
		DisplayName:    row.DisplayName,
	}
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
