package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/internal/http/dto"
	"github.com/InsightsLog/Insights-sub001/internal/http/middleware"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

type InvitationHandler struct {
	invService service.InvitationService
}

func NewInvitationHandler(invService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invService: invService}
}

func (h *InvitationHandler) Create(c *gin.Context) {
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	ctx := c.Request.Context()
	inv, inviteURL, err := h.invService.Create(ctx, middleware.GetUser(ctx), c.Param("org"), service.InviteMemberParams{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.CreateInvitationResponse{
		InvitationResponse: *dto.ToInvitationResponse(inv),
		InviteURL:          inviteURL,
	})
}

func (h *InvitationHandler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()
	invitations, err := h.invService.ListPending(ctx, middleware.GetUser(ctx), c.Param("org"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToInvitationResponses(invitations))
}

func (h *InvitationHandler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()
	inv, err := h.invService.Revoke(ctx, middleware.GetUser(ctx), c.Param("org"), c.Param("invite"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) Accept(c *gin.Context) {
	var req dto.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	ctx := c.Request.Context()
	member, err := h.invService.Accept(ctx, middleware.GetUser(ctx), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.ToMemberResponse(member))
}

// Validate is public so the dashboard can show an invitation before sign-in.
func (h *InvitationHandler) Validate(c *gin.Context) {
	inv, err := h.invService.ValidateToken(c.Request.Context(), c.Query("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ValidateInvitationResponse{
		OrganizationID: inv.OrganizationID.String(),
		Email:          inv.Email,
		Role:           string(inv.Role),
		ExpiresAt:      inv.ExpiresAt,
	})
}
