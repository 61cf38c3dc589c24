package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
	"github.com/InsightsLog/Insights-sub001/internal/model"
)

type organizationStore struct {
	queries *sqlc.Queries
}

func newOrganizationStore(queries *sqlc.Queries) OrganizationStore {
	return &organizationStore{queries: queries}
}

func (s *organizationStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	row, err := s.queries.GetOrganization(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationForUpdate(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		return nil, mapError(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) SlugTaken(ctx context.Context, slug string) (bool, error) {
	taken, err := s.queries.OrganizationSlugTaken(ctx, slug)
	if err != nil {
		return false, mapError(err)
	}
	return taken, nil
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.CreateOrganization(ctx, sqlc.CreateOrganizationParams{
		Name:    org.Name,
		Slug:    org.Slug,
		OwnerID: org.OwnerID,
	})
	if err != nil {
		return mapError(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Organization, error) {
	row, err := s.queries.UpdateOrganizationOwner(ctx, sqlc.UpdateOrganizationOwnerParams{
		OwnerID: ownerID,
		ID:      id,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.OrganizationWithRole, error) {
	rows, err := s.queries.ListOrganizationsForUser(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]model.OrganizationWithRole, len(rows))
	for i, row := range rows {
		result[i] = model.OrganizationWithRole{
			Organization: model.Organization{
				ID:        row.ID,
				OwnerID:   row.OwnerID,
				Name:      row.Name,
				Slug:      row.Slug,
				CreatedAt: row.CreatedAt.Time,
				UpdatedAt: row.UpdatedAt.Time,
			},
			Role: model.Role(row.Role),
		}
	}
	return result, nil
}

func toOrganizationModel(row sqlc.Organization) *model.Organization {
	return &model.Organization{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Slug:      row.Slug,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
