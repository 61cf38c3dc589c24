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

var _ = Describe("AdminHandler", func() {
	var (
		audit  *mockAuditService
		router *gin.Engine
		orgID  uuid.UUID
	)

	BeforeEach(func() {
		audit = &mockAuditService{}
		orgID = uuid.New()
		router = gin.New()
		router.GET("/admin/organizations/:org/audit", handler.NewAdminHandler(audit).AuditLog)
	})

	It("lists audit events with the requested limit", func() {
		actor := uuid.New()
		audit.listFn = func(_ context.Context, id string, limit int) ([]model.AuditEvent, error) {
			Expect(id).To(Equal(orgID.String()))
			Expect(limit).To(Equal(10))
			return []model.AuditEvent{{
				ID:             1234567890123,
				OrganizationID: orgID,
				ActorID:        &actor,
				EventType:      "member.removed",
				Payload:        json.RawMessage(`{"role":"member"}`),
				CreatedAt:      time.Now(),
			}}, nil
		}

		w, env := perform(router, http.MethodGet, "/admin/organizations/"+orgID.String()+"/audit?limit=10", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		var data []map[string]any
		Expect(json.Unmarshal(env.Data, &data)).To(Succeed())
		Expect(data).To(HaveLen(1))
		Expect(data[0]).To(HaveKeyWithValue("id", "1234567890123"))
		Expect(data[0]).To(HaveKeyWithValue("event_type", "member.removed"))
	})

	It("rejects a non-numeric limit", func() {
		w, env := perform(router, http.MethodGet, "/admin/organizations/"+orgID.String()+"/audit?limit=ten", "")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(env.Error).To(Equal("Invalid limit"))
	})

	It("maps an invalid organization id", func() {
		audit.listFn = func(context.Context, string, int) ([]model.AuditEvent, error) {
			return nil, service.ErrInvalidOrgID
		}

		w, env := perform(router, http.MethodGet, "/admin/organizations/nope/audit", "")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(env.Error).To(Equal("Invalid organization ID"))
	})
})
