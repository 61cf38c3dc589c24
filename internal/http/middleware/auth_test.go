package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/InsightsLog/Insights-sub001/internal/http/middleware"
	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

type stubSessions struct {
	user *model.User
	err  error
	seen string
}

func (s *stubSessions) ValidateSession(_ context.Context, token string) (*model.User, error) {
	s.seen = token
	return s.user, s.err
}

var _ = Describe("RequireAuth", func() {
	var (
		sessions *stubSessions
		router   *gin.Engine
		reached  bool
	)

	BeforeEach(func() {
		sessions = &stubSessions{}
		reached = false
		router = gin.New()
		router.GET("/private", middleware.RequireAuth(sessions, false), func(c *gin.Context) {
			reached = true
			ctx := c.Request.Context()
			c.JSON(http.StatusOK, gin.H{
				"user_id":    middleware.GetUser(ctx).ID.String(),
				"session":    middleware.GetSessionToken(ctx),
			})
		})
	})

	request := func(cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("rejects a request without a session cookie", func() {
		w := request("")

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(MatchJSON(`{"success":false,"error":"Not authenticated"}`))
		Expect(reached).To(BeFalse())
	})

	It("rejects an empty session cookie", func() {
		w := request("")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Cookie", middleware.SessionCookieName+"=")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(MatchJSON(`{"success":false,"error":"Not authenticated"}`))
		Expect(reached).To(BeFalse())
	})

	It("clears the cookie of an expired session", func() {
		sessions.err = service.ErrSessionExpired

		w := request("99")

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(MatchJSON(`{"success":false,"error":"Session expired"}`))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=;"))
	})

	It("hides store failures behind the generic message", func() {
		sessions.err = errors.New("connection refused")

		w := request("99")

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"success":false,"error":"An unexpected error occurred"}`))
	})

	It("puts the user and session on the request context", func() {
		user := &model.User{ID: uuid.New(), Email: "alice@example.com"}
		sessions.user = user

		w := request("tok_opaque")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(sessions.seen).To(Equal("tok_opaque"))
		Expect(w.Body.String()).To(MatchJSON(`{"user_id":"` + user.ID.String() + `","session":"tok_opaque"}`))
	})
})

var _ = Describe("RequireAdminAPIKey", func() {
	serve := func(key string, header, value string) int {
		router := gin.New()
		router.GET("/admin", middleware.RequireAdminAPIKey(key), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if header != "" {
			req.Header.Set(header, value)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	DescribeTable("guards operator routes",
		func(key, header, value string, status int) {
			Expect(serve(key, header, value)).To(Equal(status))
		},
		Entry("not configured", "", middleware.AdminAPIKeyHeader, "anything", http.StatusServiceUnavailable),
		Entry("missing key", "s3cret", "", "", http.StatusUnauthorized),
		Entry("wrong key", "s3cret", middleware.AdminAPIKeyHeader, "guess", http.StatusUnauthorized),
		Entry("header key", "s3cret", middleware.AdminAPIKeyHeader, "s3cret", http.StatusNoContent),
		Entry("bearer token", "s3cret", "Authorization", "Bearer s3cret", http.StatusNoContent),
	)
})

var _ = Describe("Recovery", func() {
	It("turns a panic into the failure envelope", func() {
		router := gin.New()
		router.Use(middleware.Recovery())
		router.GET("/boom", func(*gin.Context) {
			panic("nil map")
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"success":false,"error":"An unexpected error occurred"}`))
	})
})
