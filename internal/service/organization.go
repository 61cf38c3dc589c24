package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/InsightsLog/Insights-sub001/common"
	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/queue"
	"github.com/InsightsLog/Insights-sub001/internal/store"
)

type CreateOrganizationParams struct {
	Name string
	Slug *string
}

type OrganizationService interface {
	Create(ctx context.Context, caller *model.User, params CreateOrganizationParams) (*model.Organization, error)
	ListForUser(ctx context.Context, caller *model.User) ([]model.OrganizationWithRole, error)
	GetBySlug(ctx context.Context, caller *model.User, slug string) (*model.Organization, error)
	// GetCurrentUserRole reports the caller's role; ok is false when the
	// caller has no membership, which is not an error.
	GetCurrentUserRole(ctx context.Context, caller *model.User, orgID string) (role model.Role, ok bool, err error)
}

type organizationService struct {
	txRunner TxRunner
	events   eventEmitter
}

func NewOrganizationService(txRunner TxRunner, publisher EventPublisher) OrganizationService {
	return &organizationService{
		txRunner: txRunner,
		events:   eventEmitter{publisher: publisher},
	}
}

func (s *organizationService) Create(ctx context.Context, caller *model.User, params CreateOrganizationParams) (*model.Organization, error) {
	if err := validateOrgName(params.Name); err != nil {
		return nil, err
	}
	explicitSlug := params.Slug != nil && *params.Slug != ""
	if explicitSlug {
		if err := validateSlug(*params.Slug); err != nil {
			return nil, err
		}
	}
	if caller == nil {
		return nil, ErrNotAuthenticated
	}
	ctx = withCallerFields(ctx, caller, nil)

	var org *model.Organization
	err := s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		var slug string
		if explicitSlug {
			taken, err := sp.Organizations().SlugTaken(ctx, *params.Slug)
			if err != nil {
				return fmt.Errorf("checking slug availability: %w", err)
			}
			if taken {
				return ErrSlugTaken
			}
			slug = *params.Slug
		} else {
			var err error
			if slug, err = ensureSlug(ctx, sp.Organizations(), params.Name); err != nil {
				return err
			}
		}

		org = &model.Organization{
			Name:    params.Name,
			Slug:    slug,
			OwnerID: caller.ID,
		}
		if err := sp.Organizations().Create(ctx, org); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrSlugTaken
			}
			return fmt.Errorf("creating organization: %w", err)
		}

		if _, err := sp.Members().Create(ctx, org.ID, caller.ID, model.RoleOwner); err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created",
		"organization_id", org.ID,
		"slug", org.Slug)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventOrganizationCreated,
		OrganizationID: org.ID,
		ActorID:        uuidPtr(caller.ID),
		SubjectUserID:  uuidPtr(caller.ID),
		Details:        map[string]string{"name": org.Name, "slug": org.Slug},
	})

	return org, nil
}

// ensureSlug derives a slug from name and appends a numeric suffix until it
// is free across all organizations.
func ensureSlug(ctx context.Context, orgs store.OrganizationStore, name string) (string, error) {
	// leave room for a "-NN" suffix
	base, err := common.Slugify(name, "org", common.MaxSlugLength-3)
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	taken, err := orgs.SlugTaken(ctx, base)
	if err != nil {
		return "", fmt.Errorf("checking slug availability: %w", err)
	}
	if !taken {
		return base, nil
	}

	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := orgs.SlugTaken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

func (s *organizationService) ListForUser(ctx context.Context, caller *model.User) ([]model.OrganizationWithRole, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	var orgs []model.OrganizationWithRole
	err := s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		var err error
		orgs, err = sp.Organizations().ListForUser(ctx, caller.ID)
		if err != nil {
			return fmt.Errorf("listing organizations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

func (s *organizationService) GetBySlug(ctx context.Context, caller *model.User, slug string) (*model.Organization, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	var org *model.Organization
	err := s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		var err error
		org, err = sp.Organizations().GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOrganizationNotFound
			}
			return fmt.Errorf("getting organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) GetCurrentUserRole(ctx context.Context, caller *model.User, orgID string) (model.Role, bool, error) {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return "", false, err
	}
	if caller == nil {
		return "", false, ErrNotAuthenticated
	}

	var role model.Role
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		member, err := sp.Members().GetByUser(ctx, id, caller.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("getting membership: %w", err)
		}
		role = member.Role
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return role, role != "", nil
}
