package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type invitationStore struct {
	queries *sqlc.Queries
}

func newInvitationStore(queries *sqlc.Queries) InvitationStore {
	return &invitationStore{queries: queries}
}

func (s *invitationStore) Create(ctx context.Context, inv *model.Invitation) error {
	row, err := s.queries.CreateOrganizationInvite(ctx, sqlc.CreateOrganizationInviteParams{
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		Role:           string(inv.Role),
		Token:          inv.Token,
		Status:         string(inv.Status),
		InvitedBy:      inv.InvitedBy,
		ExpiresAt:      pgtype.Timestamptz{Time: inv.ExpiresAt, Valid: true},
	})
	if err != nil {
		return mapError(err)
	}
	*inv = *toInvitationModel(row)
	return nil
}

func (s *invitationStore) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	row, err := s.queries.GetOrganizationInviteByToken(ctx, token)
	if err != nil {
		return nil, mapError(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetValidByToken(ctx context.Context, token string) (*model.Invitation, error) {
	row, err := s.queries.GetValidOrganizationInviteByToken(ctx, token)
	if err != nil {
		return nil, mapError(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetPendingByEmail(ctx context.Context, orgID uuid.UUID, email string) (*model.Invitation, error) {
	row, err := s.queries.GetPendingOrganizationInviteByEmail(ctx, sqlc.GetPendingOrganizationInviteByEmailParams{
		OrganizationID: orgID,
		Email:          email,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Accept(ctx context.Context, id, userID uuid.UUID) (*model.Invitation, error) {
	row, err := s.queries.AcceptOrganizationInvite(ctx, sqlc.AcceptOrganizationInviteParams{
		ID:         id,
		AcceptedBy: &userID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Revoke(ctx context.Context, orgID, id uuid.UUID) (*model.Invitation, error) {
	row, err := s.queries.RevokeOrganizationInvite(ctx, sqlc.RevokeOrganizationInviteParams{
		ID:             id,
		OrganizationID: orgID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) ListPending(ctx context.Context, orgID uuid.UUID) ([]model.Invitation, error) {
	rows, err := s.queries.ListPendingOrganizationInvites(ctx, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	return toInvitationModels(rows), nil
}

func toInvitationModel(row sqlc.OrganizationInvite) *model.Invitation {
	return &model.Invitation{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Email:          row.Email,
		Role:           model.Role(row.Role),
		Token:          row.Token,
		Status:         model.InvitationStatus(row.Status),
		InvitedBy:      row.InvitedBy,
		AcceptedBy:     row.AcceptedBy,
		ExpiresAt:      row.ExpiresAt.Time,
		CreatedAt:      row.CreatedAt.Time,
		AcceptedAt:     timePtr(row.AcceptedAt),
	}
}

func toInvitationModels(rows []sqlc.OrganizationInvite) []model.Invitation {
	result := make([]model.Invitation, len(rows))
	for i, row := range rows {
		result[i] = *toInvitationModel(row)
	}
	return result
}
