package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/common/logger"
	"github.com/InsightsLog/Insights-sub001/internal/http/dto"
	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

type contextKey string

const (
	SessionCookieName = "insights_session"
	AdminAPIKeyHeader = "X-Admin-API-Key"

	userContextKey         contextKey = "user"
	sessionTokenContextKey contextKey = "session_token"
)

// SessionValidator is the part of service.AuthService the middleware needs.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*model.User, error)
}

// RequireAuth resolves the session cookie to a user and aborts with 401
// when there is none.
func RequireAuth(sessions SessionValidator, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := SessionTokenFromCookie(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(service.ErrNotAuthenticated.Error()))
			return
		}

		user, err := sessions.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) {
				ClearSessionCookie(c, secureCookies)
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(service.ErrSessionExpired.Error()))
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail(service.UnexpectedErrorMessage))
			return
		}

		ctx := WithUser(c.Request.Context(), user)
		ctx = context.WithValue(ctx, sessionTokenContextKey, token)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(user.ID.String())})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdminAPIKey guards operator endpoints. An empty key disables them.
func RequireAdminAPIKey(adminAPIKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminAPIKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.Fail("admin API not configured"))
			return
		}

		apiKey := c.GetHeader(AdminAPIKeyHeader)
		if apiKey == "" {
			apiKey = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(adminAPIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("invalid or missing API key"))
			return
		}

		c.Next()
	}
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser returns the authenticated caller, or nil.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenContextKey).(string)
	return token
}

// SessionTokenFromCookie returns the opaque session token. Only the service
// can tell whether it belongs to a live session.
func SessionTokenFromCookie(c *gin.Context) (string, error) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", http.ErrNoCookie
	}
	return token, nil
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
