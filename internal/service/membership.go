package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InsightsLog/Insights-sub001/common/logger"
	"github.com/InsightsLog/Insights-sub001/core/db"
	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/queue"
	"github.com/InsightsLog/Insights-sub001/internal/store"
)

type InviteMemberParams struct {
	Email string
	Role  string // empty means member
}

// MembershipService manages who belongs to an organization and with which role.
// Every method takes the authenticated caller explicitly; nil means the request
// carried no valid session.
type MembershipService interface {
	ListMembers(ctx context.Context, caller *model.User, orgID string) ([]model.OrganizationMember, error)
	InviteMember(ctx context.Context, caller *model.User, orgID string, params InviteMemberParams) (*model.OrganizationMember, error)
	UpdateMemberRole(ctx context.Context, caller *model.User, memberID, role string) (*model.OrganizationMember, error)
	RemoveMember(ctx context.Context, caller *model.User, memberID string) error
	TransferOwnership(ctx context.Context, caller *model.User, orgID, newOwnerUserID string) error
	LeaveOrganization(ctx context.Context, caller *model.User, orgID string) error
}

type membershipService struct {
	txRunner TxRunner
	events   eventEmitter
}

func NewMembershipService(txRunner TxRunner, publisher EventPublisher) MembershipService {
	return &membershipService{
		txRunner: txRunner,
		events:   eventEmitter{publisher: publisher},
	}
}

func (s *membershipService) ListMembers(ctx context.Context, caller *model.User, orgID string) ([]model.OrganizationMember, error) {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	var members []model.OrganizationMember
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		var err error
		members, err = sp.Members().ListByOrganization(ctx, id)
		if err != nil {
			return fmt.Errorf("listing members: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *membershipService) InviteMember(ctx context.Context, caller *model.User, orgID string, params InviteMemberParams) (*model.OrganizationMember, error) {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(params.Email)
	if err != nil {
		return nil, err
	}
	role, err := inviteRole(params.Role)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotAuthenticated
	}
	ctx = withCallerFields(ctx, caller, &id)

	var member *model.OrganizationMember
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		if err := requireManager(ctx, sp, id, caller.ID); err != nil {
			return err
		}

		invitee, err := sp.Users().GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("looking up profile: %w", err)
		}

		if _, err := sp.Members().GetByUser(ctx, id, invitee.ID); err == nil {
			return ErrAlreadyMember
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking membership: %w", err)
		}

		member, err = sp.Members().Create(ctx, id, invitee.ID, role)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrConflict):
				return ErrAlreadyMember
			case errors.Is(err, store.ErrPermissionDenied):
				return ErrNotAuthorized
			}
			return fmt.Errorf("creating membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "member invited",
		"member_id", member.ID,
		"invitee_id", member.UserID,
		"role", member.Role)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventMemberInvited,
		OrganizationID: id,
		ActorID:        uuidPtr(caller.ID),
		SubjectUserID:  uuidPtr(member.UserID),
		Details:        map[string]string{"member_id": member.ID.String(), "role": string(member.Role)},
	})

	return member, nil
}

func (s *membershipService) UpdateMemberRole(ctx context.Context, caller *model.User, memberID, newRole string) (*model.OrganizationMember, error) {
	id, err := parseID(memberID, ErrInvalidMemberID)
	if err != nil {
		return nil, err
	}
	role, err := assignableRole(newRole)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotAuthenticated
	}
	ctx = withCallerFields(ctx, caller, nil)
	ctx = logger.WithLogFields(ctx, logger.LogFields{MemberID: logger.Ptr(id.String())})

	var (
		updated  *model.OrganizationMember
		previous model.Role
	)
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		target, err := getMember(ctx, sp, id)
		if err != nil {
			return err
		}
		if target.UserID == caller.ID {
			return ErrCannotChangeSelf
		}
		if target.Role == model.RoleOwner {
			return ErrCannotChangeOwner
		}
		if err := requireManager(ctx, sp, target.OrganizationID, caller.ID); err != nil {
			return err
		}
		previous = target.Role

		if err := sp.Members().UpdateRole(ctx, id, role); err != nil {
			// the row was visible a moment ago, so a missing row means row
			// security refused the update
			if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrPermissionDenied) {
				return ErrNotAuthorized
			}
			return fmt.Errorf("updating member role: %w", err)
		}

		updated, err = getMember(ctx, sp, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "member role updated",
		"organization_id", updated.OrganizationID,
		"previous_role", previous,
		"role", updated.Role)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventMemberRoleUpdated,
		OrganizationID: updated.OrganizationID,
		ActorID:        uuidPtr(caller.ID),
		SubjectUserID:  uuidPtr(updated.UserID),
		Details: map[string]string{
			"member_id":     updated.ID.String(),
			"previous_role": string(previous),
			"role":          string(updated.Role),
		},
	})

	return updated, nil
}

func (s *membershipService) RemoveMember(ctx context.Context, caller *model.User, memberID string) error {
	id, err := parseID(memberID, ErrInvalidMemberID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrNotAuthenticated
	}
	ctx = withCallerFields(ctx, caller, nil)
	ctx = logger.WithLogFields(ctx, logger.LogFields{MemberID: logger.Ptr(id.String())})

	var removed *model.OrganizationMember
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		target, err := getMember(ctx, sp, id)
		if err != nil {
			return err
		}
		if target.UserID == caller.ID {
			return ErrCannotRemoveSelf
		}
		if target.Role == model.RoleOwner {
			return ErrCannotRemoveOwner
		}
		if err := requireManager(ctx, sp, target.OrganizationID, caller.ID); err != nil {
			return err
		}

		if err := sp.Members().Delete(ctx, id); err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				return ErrMemberNotFound
			case errors.Is(err, store.ErrPermissionDenied):
				return ErrNotAuthorized
			}
			return fmt.Errorf("deleting member: %w", err)
		}
		removed = target
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "member removed",
		"organization_id", removed.OrganizationID,
		"removed_user_id", removed.UserID)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventMemberRemoved,
		OrganizationID: removed.OrganizationID,
		ActorID:        uuidPtr(caller.ID),
		SubjectUserID:  uuidPtr(removed.UserID),
		Details:        map[string]string{"member_id": removed.ID.String(), "role": string(removed.Role)},
	})

	return nil
}

// TransferOwnership hands the organization to another existing member. All
// reads and writes share one transaction and the organization row stays
// locked until commit, so a failed step leaves nothing behind and concurrent
// transfers on the same organization run one after another.
func (s *membershipService) TransferOwnership(ctx context.Context, caller *model.User, orgID, newOwnerUserID string) error {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return err
	}
	newOwnerID, err := parseID(newOwnerUserID, ErrInvalidUserID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrNotAuthenticated
	}
	if newOwnerID == caller.ID {
		return ErrCannotTransferToSelf
	}
	ctx = withCallerFields(ctx, caller, &id)

	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		org, err := sp.Organizations().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOrganizationNotFound
			}
			return fmt.Errorf("getting organization: %w", err)
		}
		if org.OwnerID != caller.ID {
			return ErrNotOwner
		}

		// Lock, then re-check: a transfer that committed while we waited
		// makes the caller a non-owner.
		org, err = sp.Organizations().GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotOwner
			}
			return fmt.Errorf("locking organization: %w", err)
		}
		if org.OwnerID != caller.ID {
			return ErrNotOwner
		}

		newOwner, err := sp.Members().GetByUser(ctx, id, newOwnerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNewOwnerNotMember
			}
			return fmt.Errorf("getting new owner membership: %w", err)
		}

		// Any failure here, including a missing row, is reported the same way.
		current, err := sp.Members().GetByUser(ctx, id, caller.ID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to fetch current owner membership", "error", err)
			return fmt.Errorf("%w: %w", ErrFetchOwnerMembership, err)
		}

		if _, err := sp.Organizations().UpdateOwner(ctx, id, newOwnerID); err != nil {
			slog.ErrorContext(ctx, "failed to update organization owner", "error", err)
			return fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
		if err := sp.Members().UpdateRole(ctx, newOwner.ID, model.RoleOwner); err != nil {
			slog.ErrorContext(ctx, "failed to promote new owner", "error", err, "member_id", newOwner.ID)
			return fmt.Errorf("%w: %w", ErrNewOwnerRoleFailed, err)
		}
		if err := sp.Members().UpdateRole(ctx, current.ID, model.RoleAdmin); err != nil {
			slog.ErrorContext(ctx, "failed to demote previous owner", "error", err, "member_id", current.ID)
			return fmt.Errorf("%w: %w", ErrPreviousOwnerRoleFailed, err)
		}
		return nil
	})
	if err != nil {
		// the single-owner constraint is deferred, so a second owner surfaces at commit
		if errors.Is(err, db.ErrCommit) {
			slog.ErrorContext(ctx, "ownership transfer did not commit", "error", err)
			return fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
		return err
	}

	slog.InfoContext(ctx, "ownership transferred", "new_owner_id", newOwnerID)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventOwnershipTransferred,
		OrganizationID: id,
		ActorID:        uuidPtr(caller.ID),
		SubjectUserID:  uuidPtr(newOwnerID),
		Details: map[string]string{
			"previous_owner_id": caller.ID.String(),
			"new_owner_id":      newOwnerID.String(),
		},
	})

	return nil
}

func (s *membershipService) LeaveOrganization(ctx context.Context, caller *model.User, orgID string) error {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrNotAuthenticated
	}
	ctx = withCallerFields(ctx, caller, &id)

	var left *model.OrganizationMember
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		own, err := sp.Members().GetByUser(ctx, id, caller.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return fmt.Errorf("getting membership: %w", err)
		}
		if own.Role == model.RoleOwner {
			return ErrOwnerCannotLeave
		}

		if err := sp.Members().Delete(ctx, own.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return fmt.Errorf("deleting membership: %w", err)
		}
		left = own
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "member left organization", "role", left.Role)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventMemberLeft,
		OrganizationID: id,
		ActorID:        uuidPtr(caller.ID),
		SubjectUserID:  uuidPtr(caller.ID),
		Details:        map[string]string{"member_id": left.ID.String(), "role": string(left.Role)},
	})

	return nil
}

func getMember(ctx context.Context, sp StoreProvider, id uuid.UUID) (*model.OrganizationMember, error) {
	member, err := sp.Members().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}
	return member, nil
}

// requireManager fails fast unless userID is an owner or admin of orgID.
// Row security enforces the same rule on the write itself.
func requireManager(ctx context.Context, sp StoreProvider, orgID, userID uuid.UUID) error {
	member, err := sp.Members().GetByUser(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotAuthorized
		}
		return fmt.Errorf("getting caller membership: %w", err)
	}
	if !member.Role.CanManageMembers() {
		return ErrNotAuthorized
	}
	return nil
}

func withCallerFields(ctx context.Context, caller *model.User, orgID *uuid.UUID) context.Context {
	fields := logger.LogFields{
		UserID:    logger.Ptr(caller.ID.String()),
		Component: "insights.service",
	}
	if orgID != nil {
		fields.OrganizationID = logger.Ptr(orgID.String())
	}
	return logger.WithLogFields(ctx, fields)
}
