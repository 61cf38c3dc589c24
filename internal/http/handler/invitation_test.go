package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/InsightsLog/Insights-sub001/internal/http/handler"
	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

var _ = Describe("InvitationHandler", func() {
	var (
		invitations *mockInvitationService
		router      *gin.Engine
		orgID       uuid.UUID
		invite      model.Invitation
	)

	BeforeEach(func() {
		invitations = &mockInvitationService{}
		orgID = uuid.New()
		invite = model.Invitation{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Email:          "dave@example.com",
			Role:           model.RoleMember,
			Token:          "secret-token",
			Status:         model.InvitationStatusPending,
			ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
		}

		h := handler.NewInvitationHandler(invitations)
		router = gin.New()
		router.GET("/invites/validate", h.Validate)
		authed := router.Group("", withCaller(&model.User{ID: uuid.New(), Email: "alice@example.com"}))
		authed.POST("/organizations/:org/invites", h.Create)
		authed.GET("/organizations/:org/invites", h.ListPending)
		authed.DELETE("/organizations/:org/invites/:invite", h.Revoke)
		authed.POST("/invites/accept", h.Accept)
	})

	It("returns the invite url on create", func() {
		invitations.createFn = func(_ context.Context, _ *model.User, id string, params service.InviteMemberParams) (*model.Invitation, string, error) {
			Expect(id).To(Equal(orgID.String()))
			Expect(params.Email).To(Equal("dave@example.com"))
			return &invite, "http://localhost:3000/invite?token=secret-token", nil
		}

		w, env := perform(router, http.MethodPost, "/organizations/"+orgID.String()+"/invites", `{"email":"dave@example.com"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var data map[string]any
		Expect(json.Unmarshal(env.Data, &data)).To(Succeed())
		Expect(data).To(HaveKeyWithValue("invite_url", "http://localhost:3000/invite?token=secret-token"))
		Expect(data).To(HaveKeyWithValue("email", "dave@example.com"))
	})

	It("reports a pending invitation as a conflict", func() {
		invitations.createFn = func(context.Context, *model.User, string, service.InviteMemberParams) (*model.Invitation, string, error) {
			return nil, "", service.ErrInvitePendingExists
		}

		w, env := perform(router, http.MethodPost, "/organizations/"+orgID.String()+"/invites", `{"email":"dave@example.com"}`)

		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(env.Error).To(Equal("A pending invitation already exists for this email"))
	})

	It("validates a token without a session", func() {
		invitations.validateTokenFn = func(_ context.Context, token string) (*model.Invitation, error) {
			Expect(token).To(Equal("secret-token"))
			return &invite, nil
		}

		w, env := perform(router, http.MethodGet, "/invites/validate?token=secret-token", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		var data map[string]any
		Expect(json.Unmarshal(env.Data, &data)).To(Succeed())
		Expect(data).To(HaveKeyWithValue("organization_id", orgID.String()))
		Expect(data).To(HaveKeyWithValue("role", "member"))
		Expect(string(env.Data)).NotTo(ContainSubstring("secret-token"))
	})

	It("reports an expired token", func() {
		invitations.validateTokenFn = func(context.Context, string) (*model.Invitation, error) {
			return nil, service.ErrInviteExpired
		}

		w, env := perform(router, http.MethodGet, "/invites/validate?token=old", "")

		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(env.Error).To(Equal("Invitation has expired"))
	})

	It("requires a token to accept", func() {
		w, env := perform(router, http.MethodPost, "/invites/accept", `{}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(env.Error).To(Equal("Invalid request body"))
	})

	It("accepts an invitation", func() {
		invitations.acceptFn = func(_ context.Context, _ *model.User, token string) (*model.OrganizationMember, error) {
			Expect(token).To(Equal("secret-token"))
			return &model.OrganizationMember{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}, nil
		}

		w, _ := perform(router, http.MethodPost, "/invites/accept", `{"token":"secret-token"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))
	})

	It("revokes by organization and invite id", func() {
		invitations.revokeFn = func(_ context.Context, _ *model.User, org, id string) (*model.Invitation, error) {
			Expect(org).To(Equal(orgID.String()))
			Expect(id).To(Equal(invite.ID.String()))
			revoked := invite
			revoked.Status = model.InvitationStatusRevoked
			return &revoked, nil
		}

		w, env := perform(router, http.MethodDelete, "/organizations/"+orgID.String()+"/invites/"+invite.ID.String(), "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(string(env.Data)).To(ContainSubstring(`"status":"revoked"`))
	})

	It("lists pending invitations", func() {
		invitations.listPendingFn = func(context.Context, *model.User, string) ([]model.Invitation, error) {
			return []model.Invitation{invite}, nil
		}

		w, env := perform(router, http.MethodGet, "/organizations/"+orgID.String()+"/invites", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		var data []map[string]any
		Expect(json.Unmarshal(env.Data, &data)).To(Succeed())
		Expect(data).To(HaveLen(1))
	})
})
