package service_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/InsightsLog/Insights-sub001/internal/service"
)

var _ = Describe("Classify", func() {
	DescribeTable("maps sentinels to a kind and their own message",
		func(err error, kind service.ErrorKind) {
			gotKind, msg := service.Classify(err)

			Expect(gotKind).To(Equal(kind))
			Expect(msg).To(Equal(err.Error()))
		},
		Entry("invalid slug", service.ErrInvalidSlug, service.KindInvalidInput),
		Entry("owner assignment", service.ErrCannotAssignOwner, service.KindInvalidInput),
		Entry("unauthenticated", service.ErrNotAuthenticated, service.KindUnauthenticated),
		Entry("not owner", service.ErrNotOwner, service.KindForbidden),
		Entry("owner cannot leave", service.ErrOwnerCannotLeave, service.KindForbidden),
		Entry("member not found", service.ErrMemberNotFound, service.KindNotFound),
		Entry("already member", service.ErrAlreadyMember, service.KindConflict),
		Entry("transfer failed", service.ErrTransferFailed, service.KindUnexpected),
	)

	It("sees through wrapping", func() {
		err := fmt.Errorf("%w: %w", service.ErrNewOwnerRoleFailed, errors.New("deadlock detected"))

		kind, msg := service.Classify(err)

		Expect(kind).To(Equal(service.KindUnexpected))
		Expect(msg).To(Equal("Failed to update new owner's role"))
	})

	It("hides the details of unknown errors", func() {
		kind, msg := service.Classify(errors.New(`pq: relation "organizations" does not exist`))

		Expect(kind).To(Equal(service.KindUnexpected))
		Expect(msg).To(Equal(service.UnexpectedErrorMessage))
	})
})
