package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/internal/http/dto"
	"github.com/InsightsLog/Insights-sub001/internal/http/middleware"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

type OrganizationHandler struct {
	orgService    service.OrganizationService
	memberService service.MembershipService
}

func NewOrganizationHandler(orgService service.OrganizationService, memberService service.MembershipService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService:    orgService,
		memberService: memberService,
	}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	ctx := c.Request.Context()
	org, err := h.orgService.Create(ctx, middleware.GetUser(ctx), service.CreateOrganizationParams{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	orgs, err := h.orgService.ListForUser(ctx, middleware.GetUser(ctx))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToMyOrganizationResponses(orgs))
}

// Get looks an organization up by slug.
func (h *OrganizationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	org, err := h.orgService.GetBySlug(ctx, middleware.GetUser(ctx), c.Param("org"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Role(c *gin.Context) {
	ctx := c.Request.Context()
	role, ok, err := h.orgService.GetCurrentUserRole(ctx, middleware.GetUser(ctx), c.Param("org"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.RoleResponse{}
	if ok {
		r := string(role)
		resp.Role = &r
	}
	respond(c, http.StatusOK, resp)
}

func (h *OrganizationHandler) Members(c *gin.Context) {
	ctx := c.Request.Context()
	members, err := h.memberService.ListMembers(ctx, middleware.GetUser(ctx), c.Param("org"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToMemberResponses(members))
}

func (h *OrganizationHandler) Invite(c *gin.Context) {
	var req dto.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	ctx := c.Request.Context()
	member, err := h.memberService.InviteMember(ctx, middleware.GetUser(ctx), c.Param("org"), service.InviteMemberParams{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *OrganizationHandler) Transfer(c *gin.Context) {
	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	ctx := c.Request.Context()
	if err := h.memberService.TransferOwnership(ctx, middleware.GetUser(ctx), c.Param("org"), req.NewOwnerUserID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}

func (h *OrganizationHandler) Leave(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.memberService.LeaveOrganization(ctx, middleware.GetUser(ctx), c.Param("org")); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}
