package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/queue"
	"github.com/InsightsLog/Insights-sub001/internal/store"
)

const (
	InviteTokenLength = 32
	InviteExpiryDays  = 7
)

// InvitationService handles emailed invitations for people who may not have
// an account yet. Accepting one creates the membership.
type InvitationService interface {
	Create(ctx context.Context, caller *model.User, orgID string, params InviteMemberParams) (*model.Invitation, string, error)
	ValidateToken(ctx context.Context, token string) (*model.Invitation, error)
	Accept(ctx context.Context, caller *model.User, token string) (*model.OrganizationMember, error)
	Revoke(ctx context.Context, caller *model.User, orgID, inviteID string) (*model.Invitation, error)
	ListPending(ctx context.Context, caller *model.User, orgID string) ([]model.Invitation, error)
}

type invitationService struct {
	txRunner     TxRunner
	events       eventEmitter
	dashboardURL string
}

func NewInvitationService(txRunner TxRunner, publisher EventPublisher, dashboardURL string) InvitationService {
	return &invitationService{
		txRunner:     txRunner,
		events:       eventEmitter{publisher: publisher},
		dashboardURL: strings.TrimSuffix(dashboardURL, "/"),
	}
}

func (s *invitationService) Create(ctx context.Context, caller *model.User, orgID string, params InviteMemberParams) (*model.Invitation, string, error) {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return nil, "", err
	}
	email, err := normalizeEmail(params.Email)
	if err != nil {
		return nil, "", err
	}
	role, err := inviteRole(params.Role)
	if err != nil {
		return nil, "", err
	}
	if caller == nil {
		return nil, "", ErrNotAuthenticated
	}
	ctx = withCallerFields(ctx, caller, &id)

	token, err := generateSecureToken(InviteTokenLength)
	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	inv := &model.Invitation{
		OrganizationID: id,
		Email:          email,
		Role:           role,
		Token:          token,
		Status:         model.InvitationStatusPending,
		InvitedBy:      uuidPtr(caller.ID),
		ExpiresAt:      time.Now().Add(InviteExpiryDays * 24 * time.Hour),
	}

	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		if err := requireManager(ctx, sp, id, caller.ID); err != nil {
			return err
		}

		// an invite for someone already in the organization can never be accepted
		if existing, err := sp.Users().GetByEmail(ctx, email); err == nil {
			if _, err := sp.Members().GetByUser(ctx, id, existing.ID); err == nil {
				return ErrAlreadyMember
			} else if !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("checking membership: %w", err)
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("looking up profile: %w", err)
		}

		pending, err := sp.Invitations().GetPendingByEmail(ctx, id, email)
		if err == nil && pending.IsValid() {
			return ErrInvitePendingExists
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking pending invitations: %w", err)
		}

		if err := sp.Invitations().Create(ctx, inv); err != nil {
			return fmt.Errorf("creating invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	inviteURL := fmt.Sprintf("%s/invite?token=%s", s.dashboardURL, url.QueryEscape(token))

	slog.InfoContext(ctx, "invitation created",
		"invitation_id", inv.ID,
		"email", email,
		"role", inv.Role,
		"expires_at", inv.ExpiresAt)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventInviteCreated,
		OrganizationID: id,
		ActorID:        uuidPtr(caller.ID),
		Details: map[string]string{
			"invitation_id": inv.ID.String(),
			"email":         email,
			"role":          string(inv.Role),
		},
	})

	return inv, inviteURL, nil
}

func (s *invitationService) ValidateToken(ctx context.Context, token string) (*model.Invitation, error) {
	if token == "" {
		return nil, ErrInviteNotFound
	}

	var inv *model.Invitation
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		inv, err = validateToken(ctx, sp.Invitations(), token)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// validateToken returns the invitation only while it can still be accepted,
// otherwise an error naming why not.
func validateToken(ctx context.Context, invitations store.InvitationStore, token string) (*model.Invitation, error) {
	inv, err := invitations.GetValidByToken(ctx, token)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	inv, err = invitations.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	switch inv.Status {
	case model.InvitationStatusAccepted:
		return nil, ErrInviteAlreadyUsed
	case model.InvitationStatusRevoked:
		return nil, ErrInviteRevoked
	case model.InvitationStatusExpired:
		return nil, ErrInviteExpired
	default:
		if time.Now().After(inv.ExpiresAt) {
			return nil, ErrInviteExpired
		}
		return nil, ErrInviteNotFound
	}
}

func (s *invitationService) Accept(ctx context.Context, caller *model.User, token string) (*model.OrganizationMember, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}
	if token == "" {
		return nil, ErrInviteNotFound
	}
	ctx = withCallerFields(ctx, caller, nil)

	var (
		member *model.OrganizationMember
		inv    *model.Invitation
	)
	err := s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		var err error
		inv, err = validateToken(ctx, sp.Invitations(), token)
		if err != nil {
			return err
		}

		if !strings.EqualFold(inv.Email, caller.Email) {
			slog.WarnContext(ctx, "email mismatch on invitation acceptance",
				"invitation_email", inv.Email,
				"user_email", caller.Email,
				"invitation_id", inv.ID)
			return ErrEmailMismatch
		}

		if _, err := sp.Members().GetByUser(ctx, inv.OrganizationID, caller.ID); err == nil {
			return ErrAlreadyMember
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking membership: %w", err)
		}

		if _, err := sp.Invitations().Accept(ctx, inv.ID, caller.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// accepted or revoked between the read and the update
				return ErrInviteAlreadyUsed
			}
			return fmt.Errorf("accepting invitation: %w", err)
		}

		member, err = sp.Members().Create(ctx, inv.OrganizationID, caller.ID, inv.Role)
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

	slog.InfoContext(ctx, "invitation accepted",
		"invitation_id", inv.ID,
		"organization_id", inv.OrganizationID,
		"member_id", member.ID)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventMemberJoined,
		OrganizationID: inv.OrganizationID,
		ActorID:        uuidPtr(caller.ID),
		SubjectUserID:  uuidPtr(caller.ID),
		Details: map[string]string{
			"invitation_id": inv.ID.String(),
			"member_id":     member.ID.String(),
			"role":          string(member.Role),
		},
	})

	return member, nil
}

func (s *invitationService) Revoke(ctx context.Context, caller *model.User, orgID, inviteID string) (*model.Invitation, error) {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return nil, err
	}
	invID, err := parseID(inviteID, ErrInvalidInviteID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotAuthenticated
	}
	ctx = withCallerFields(ctx, caller, &id)

	var inv *model.Invitation
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		if err := requireManager(ctx, sp, id, caller.ID); err != nil {
			return err
		}

		var err error
		inv, err = sp.Invitations().Revoke(ctx, id, invID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return fmt.Errorf("revoking invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "invitation revoked",
		"invitation_id", inv.ID,
		"email", inv.Email)

	s.events.emit(ctx, queue.MemberEvent{
		Type:           queue.EventInviteRevoked,
		OrganizationID: id,
		ActorID:        uuidPtr(caller.ID),
		Details:        map[string]string{"invitation_id": inv.ID.String(), "email": inv.Email},
	})

	return inv, nil
}

func (s *invitationService) ListPending(ctx context.Context, caller *model.User, orgID string) ([]model.Invitation, error) {
	id, err := parseID(orgID, ErrInvalidOrgID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	var invitations []model.Invitation
	err = s.txRunner.AsUser(ctx, caller.ID, func(sp StoreProvider) error {
		if err := requireManager(ctx, sp, id, caller.ID); err != nil {
			return err
		}

		var err error
		invitations, err = sp.Invitations().ListPending(ctx, id)
		if err != nil {
			return fmt.Errorf("listing invitations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
