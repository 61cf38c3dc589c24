package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/internal/http/dto"
	"github.com/InsightsLog/Insights-sub001/internal/http/middleware"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

// MemberHandler serves routes addressed by membership id.
type MemberHandler struct {
	memberService service.MembershipService
}

func NewMemberHandler(memberService service.MembershipService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	ctx := c.Request.Context()
	member, err := h.memberService.UpdateMemberRole(ctx, middleware.GetUser(ctx), c.Param("member"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToMemberResponse(member))
}

func (h *MemberHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.memberService.RemoveMember(ctx, middleware.GetUser(ctx), c.Param("member")); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}
