package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/internal/http/handler"
	"github.com/InsightsLog/Insights-sub001/internal/http/middleware"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	AdminAPIKey  string
}

// Services is the subset of *service.Services the routes need.
type Services interface {
	Organizations() service.OrganizationService
	Memberships() service.MembershipService
	Invitations() service.InvitationService
	Audit() service.AuditService
	Auth() service.AuthService
}

func SetupRoutes(router *gin.Engine, services Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(services.Auth(), cfg.IsProduction)

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	invHandler := handler.NewInvitationHandler(services.Invitations())
	router.GET("/invites/validate", invHandler.Validate)

	v1 := router.Group("/api/v1")
	v1.Use(requireAuth)
	{
		orgHandler := handler.NewOrganizationHandler(services.Organizations(), services.Memberships())
		OrganizationRouter(v1.Group("/organizations"), orgHandler, invHandler)

		memberHandler := handler.NewMemberHandler(services.Memberships())
		MemberRouter(v1.Group("/members"), memberHandler)

		v1.POST("/invites/accept", invHandler.Accept)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdminAPIKey(cfg.AdminAPIKey))
	{
		adminHandler := handler.NewAdminHandler(services.Audit())
		admin.GET("/organizations/:org/audit", adminHandler.AuditLog)
	}
}

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", requireAuth, h.Me)
}

// OrganizationRouter mounts organization routes. GET /:org takes a slug,
// every nested route takes the organization id.
func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler, inv *handler.InvitationHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:org", h.Get)
	rg.GET("/:org/role", h.Role)
	rg.GET("/:org/members", h.Members)
	rg.POST("/:org/members", h.Invite)
	rg.POST("/:org/transfer", h.Transfer)
	rg.POST("/:org/leave", h.Leave)

	rg.GET("/:org/invites", inv.ListPending)
	rg.POST("/:org/invites", inv.Create)
	rg.DELETE("/:org/invites/:invite", inv.Revoke)
}

func MemberRouter(rg *gin.RouterGroup, h *handler.MemberHandler) {
	rg.PATCH("/:member", h.UpdateRole)
	rg.DELETE("/:member", h.Remove)
}
