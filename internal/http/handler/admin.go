package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/internal/http/dto"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

type AdminHandler struct {
	auditService service.AuditService
}

func NewAdminHandler(auditService service.AuditService) *AdminHandler {
	return &AdminHandler{auditService: auditService}
}

// AuditLog lists the newest audit events of an organization. ?limit is
// clamped by the service.
func (h *AdminHandler) AuditLog(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail("Invalid limit"))
			return
		}
		limit = n
	}

	events, err := h.auditService.List(c.Request.Context(), c.Param("org"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToAuditEventResponses(events))
}
