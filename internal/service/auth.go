package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"github.com/InsightsLog/Insights-sub001/common/id"
	"github.com/InsightsLog/Insights-sub001/core/config"
	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/store"
)

const (
	SessionDuration = 7 * 24 * time.Hour

	sessionTokenBytes = 32
)

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error)
	// ValidateSession resolves the opaque cookie token to its user.
	ValidateSession(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

// CodeAuthenticator exchanges an AuthKit authorization code for a WorkOS user.
type CodeAuthenticator interface {
	AuthenticateWithCode(ctx context.Context, opts usermanagement.AuthenticateWithCodeOpts) (usermanagement.AuthenticateResponse, error)
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	workos       CodeAuthenticator
	cfg          config.WorkOSConfig
}

func NewAuthService(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	workos CodeAuthenticator,
	cfg config.WorkOSConfig,
) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		workos:       workos,
		cfg:          cfg,
	}
}

// NewWorkOSClient returns the usermanagement client configured with the API key.
func NewWorkOSClient(cfg config.WorkOSConfig) *usermanagement.Client {
	usermanagement.SetAPIKey(cfg.APIKey)
	return usermanagement.NewClient(cfg.APIKey)
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.cfg.ClientID,
		RedirectURI: s.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	if code == "" {
		return nil, nil, ErrInvalidCode
	}

	authResponse, err := s.workos.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	workosUser := authResponse.User

	var avatarURL *string
	if workosUser.ProfilePictureURL != "" {
		avatarURL = &workosUser.ProfilePictureURL
	}
	displayName := buildUserName(workosUser)

	user := &model.User{
		Email:       workosUser.Email,
		DisplayName: &displayName,
		AvatarURL:   avatarURL,
		WorkOSID:    &workosUser.ID,
	}

	if err := s.userStore.UpsertByWorkOSID(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to upsert profile",
			"error", err,
			"email", user.Email,
			"workos_id", workosUser.ID)
		return nil, nil, fmt.Errorf("upserting profile: %w", err)
	}

	token, err := generateSecureToken(sessionTokenBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("generating session token: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		TokenHash: HashSessionToken(token),
		ExpiresAt: time.Now().Add(SessionDuration),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"user_id", user.ID)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}
	session.Token = token

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"session_id", session.ID)

	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrSessionExpired
	}

	session, err := s.sessionStore.GetValidByTokenHash(ctx, HashSessionToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionStore.DeleteByTokenHash(ctx, HashSessionToken(token)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// HashSessionToken is the form of a session token kept in the database.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildUserName(user usermanagement.User) string {
	if user.FirstName != "" && user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.LastName != "" {
		return user.LastName
	}
	return user.Email
}
