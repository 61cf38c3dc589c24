package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/internal/http/dto"
	"github.com/InsightsLog/Insights-sub001/internal/http/middleware"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

const (
	stateCookieName = "insights_oauth_state"
	stateMaxAge     = 600
)

type AuthHandler struct {
	authService  service.AuthService
	dashboardURL string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, dashboardURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		dashboardURL: dashboardURL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := generateState()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate state", "error", err)
		respondError(c, err)
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get authorization URL", "error", err)
		respondError(c, err)
		return
	}

	c.SetCookie(stateCookieName, state, stateMaxAge, "/", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errorParam := c.Query("error"); errorParam != "" {
		slog.WarnContext(ctx, "OAuth error", "error", errorParam, "description", c.Query("error_description"))
		h.redirectWithError(c, errorParam)
		return
	}

	state := c.Query("state")
	storedState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != storedState {
		slog.WarnContext(ctx, "state mismatch")
		h.redirectWithError(c, "invalid_state")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.isProduction, true)

	user, session, err := h.authService.HandleCallback(ctx, c.Query("code"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			h.redirectWithError(c, "invalid_code")
			return
		}
		slog.ErrorContext(ctx, "failed to handle callback", "error", err)
		h.redirectWithError(c, "callback_failed")
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		session.Token,
		int(service.SessionDuration.Seconds()),
		"/",
		"",
		h.isProduction,
		true,
	)

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID)

	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if token, err := middleware.SessionTokenFromCookie(c); err == nil {
		if err := h.authService.Logout(ctx, token); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err)
		}
	}

	middleware.ClearSessionCookie(c, h.isProduction)
	respond(c, http.StatusOK, nil)
}

// Me is mounted behind RequireAuth.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	if user == nil {
		respondError(c, service.ErrNotAuthenticated)
		return
	}
	respond(c, http.StatusOK, dto.ToUserResponse(user))
}

func (h *AuthHandler) redirectWithError(c *gin.Context, code string) {
	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error="+url.QueryEscape(code))
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
