package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/InsightsLog/Insights-sub001/common/logger"
)

var _ = Describe("TraceHandler", func() {
	var (
		buf *bytes.Buffer
		log *slog.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = slog.New(logger.NewTraceHandler(slog.NewJSONHandler(buf, nil)))
	})

	decode := func() map[string]any {
		var out map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &out)).To(Succeed())
		return out
	}

	It("adds fields carried by the context", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			OrganizationID: logger.Ptr("org-1"),
			UserID:         logger.Ptr("user-1"),
			Component:      "insights.service.membership",
		})

		log.InfoContext(ctx, "member removed")

		out := decode()
		Expect(out).To(HaveKeyWithValue("organization_id", "org-1"))
		Expect(out).To(HaveKeyWithValue("user_id", "user-1"))
		Expect(out).To(HaveKeyWithValue("component", "insights.service.membership"))
		Expect(out).NotTo(HaveKey("member_id"))
	})

	It("merges later fields over earlier ones", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			OrganizationID: logger.Ptr("org-1"),
			Component:      "insights.http",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			MemberID:  logger.Ptr("member-1"),
			Component: "insights.service.membership",
		})

		fields := logger.GetLogFields(ctx)
		Expect(*fields.OrganizationID).To(Equal("org-1"))
		Expect(*fields.MemberID).To(Equal("member-1"))
		Expect(fields.Component).To(Equal("insights.service.membership"))
	})

	It("logs plainly without enrichment", func() {
		log.InfoContext(context.Background(), "plain")

		out := decode()
		Expect(out).To(HaveKeyWithValue("msg", "plain"))
		Expect(out).NotTo(HaveKey("trace_id"))
		Expect(out).NotTo(HaveKey("organization_id"))
	})
})
