package db_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/InsightsLog/Insights-sub001/core/db"
	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
)

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func newProfile(ctx context.Context, name string) sqlc.Profile {
	var p sqlc.Profile
	workosID := "user_" + uuid.NewString()
	err := database.WithTx(ctx, func(q *sqlc.Queries) error {
		var err error
		p, err = q.UpsertProfileByWorkOSID(ctx, sqlc.UpsertProfileByWorkOSIDParams{
			Email:       name + "-" + uuid.NewString()[:8] + "@example.com",
			DisplayName: &name,
			WorkosID:    &workosID,
		})
		return err
	})
	Expect(err).NotTo(HaveOccurred())
	return p
}

func newOrganization(ctx context.Context, owner sqlc.Profile) (sqlc.Organization, sqlc.OrganizationMember) {
	var (
		org    sqlc.Organization
		member sqlc.OrganizationMember
	)
	err := database.AsUser(ctx, owner.ID, func(q *sqlc.Queries) error {
		var err error
		org, err = q.CreateOrganization(ctx, sqlc.CreateOrganizationParams{
			Name:    "Acme",
			Slug:    "acme-" + uuid.NewString()[:8],
			OwnerID: owner.ID,
		})
		if err != nil {
			return err
		}
		member, err = q.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
			OrganizationID: org.ID,
			UserID:         owner.ID,
			Role:           "owner",
		})
		return err
	})
	Expect(err).NotTo(HaveOccurred())
	return org, member
}

func addMember(ctx context.Context, by sqlc.Profile, org sqlc.Organization, user sqlc.Profile, role string) sqlc.OrganizationMember {
	var member sqlc.OrganizationMember
	err := database.AsUser(ctx, by.ID, func(q *sqlc.Queries) error {
		var err error
		member, err = q.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
			OrganizationID: org.ID,
			UserID:         user.ID,
			Role:           role,
		})
		return err
	})
	Expect(err).NotTo(HaveOccurred())
	return member
}

func inviteFor(ctx context.Context, by sqlc.Profile, org sqlc.Organization, invitee sqlc.Profile, role string) sqlc.OrganizationInvite {
	var inv sqlc.OrganizationInvite
	err := database.AsUser(ctx, by.ID, func(q *sqlc.Queries) error {
		var err error
		inv, err = q.CreateOrganizationInvite(ctx, sqlc.CreateOrganizationInviteParams{
			OrganizationID: org.ID,
			Email:          invitee.Email,
			Role:           role,
			Token:          uuid.NewString(),
			Status:         "pending",
			InvitedBy:      &by.ID,
			ExpiresAt:      pgtype.Timestamptz{Time: time.Now().Add(time.Hour), Valid: true},
		})
		return err
	})
	Expect(err).NotTo(HaveOccurred())
	return inv
}

var _ = Describe("row security", func() {
	var (
		ctx                context.Context
		alice, carol, erin sqlc.Profile
		mallory            sqlc.Profile
		org                sqlc.Organization
		aliceMember        sqlc.OrganizationMember
		carolMember        sqlc.OrganizationMember
	)

	BeforeEach(func() {
		ctx = context.Background()
		alice = newProfile(ctx, "alice")
		carol = newProfile(ctx, "carol")
		erin = newProfile(ctx, "erin")
		mallory = newProfile(ctx, "mallory")

		org, aliceMember = newOrganization(ctx, alice)
		carolMember = addMember(ctx, alice, org, carol, "member")
	})

	Describe("visibility", func() {
		It("hides an organization and its members from non-members", func() {
			err := database.AsUser(ctx, mallory.ID, func(q *sqlc.Queries) error {
				_, err := q.GetOrganization(ctx, org.ID)
				Expect(err).To(MatchError(pgx.ErrNoRows))

				members, err := q.ListOrganizationMembers(ctx, org.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(members).To(BeEmpty())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("shows members the whole roster", func() {
			err := database.AsUser(ctx, carol.ID, func(q *sqlc.Queries) error {
				members, err := q.ListOrganizationMembers(ctx, org.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(members).To(HaveLen(2))
				Expect(members[0].UserID).To(Equal(alice.ID))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("sees nothing without a caller identity", func() {
			err := database.WithTx(ctx, func(q *sqlc.Queries) error {
				_, err := q.GetOrganization(ctx, org.ID)
				Expect(err).To(MatchError(pgx.ErrNoRows))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("only lets the owner lock the organization row", func() {
			err := database.AsUser(ctx, carol.ID, func(q *sqlc.Queries) error {
				_, err := q.GetOrganizationForUpdate(ctx, org.ID)
				Expect(err).To(MatchError(pgx.ErrNoRows))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())

			err = database.AsUser(ctx, alice.ID, func(q *sqlc.Queries) error {
				locked, err := q.GetOrganizationForUpdate(ctx, org.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(locked.ID).To(Equal(org.ID))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports slugs of organizations the caller cannot see", func() {
			err := database.AsUser(ctx, mallory.ID, func(q *sqlc.Queries) error {
				taken, err := q.OrganizationSlugTaken(ctx, org.Slug)
				Expect(err).NotTo(HaveOccurred())
				Expect(taken).To(BeTrue())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("member writes", func() {
		It("rejects a member adding someone", func() {
			err := database.AsUser(ctx, carol.ID, func(q *sqlc.Queries) error {
				_, err := q.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
					OrganizationID: org.ID,
					UserID:         erin.ID,
					Role:           "member",
				})
				return err
			})
			Expect(sqlState(err)).To(Equal("42501"))
		})

		It("rejects a stranger adding themselves", func() {
			err := database.AsUser(ctx, mallory.ID, func(q *sqlc.Queries) error {
				_, err := q.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
					OrganizationID: org.ID,
					UserID:         mallory.ID,
					Role:           "member",
				})
				return err
			})
			Expect(sqlState(err)).To(Equal("42501"))
		})

		It("lets a member delete only their own row", func() {
			err := database.AsUser(ctx, carol.ID, func(q *sqlc.Queries) error {
				n, err := q.DeleteOrganizationMember(ctx, aliceMember.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(BeZero())

				n, err = q.DeleteOrganizationMember(ctx, carolMember.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(1)))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("single owner", func() {
		It("refuses a second owner when the transaction commits", func() {
			err := database.AsUser(ctx, alice.ID, func(q *sqlc.Queries) error {
				_, err := q.UpdateOrganizationMemberRole(ctx, sqlc.UpdateOrganizationMemberRoleParams{
					ID:   carolMember.ID,
					Role: "owner",
				})
				Expect(err).NotTo(HaveOccurred())
				return nil
			})

			Expect(err).To(MatchError(db.ErrCommit))
			Expect(sqlState(err)).To(Equal("23P01"))
		})

		It("commits a swap of owners within one transaction", func() {
			err := database.AsUser(ctx, alice.ID, func(q *sqlc.Queries) error {
				if _, err := q.UpdateOrganizationOwner(ctx, sqlc.UpdateOrganizationOwnerParams{ID: org.ID, OwnerID: carol.ID}); err != nil {
					return err
				}
				if _, err := q.UpdateOrganizationMemberRole(ctx, sqlc.UpdateOrganizationMemberRoleParams{ID: carolMember.ID, Role: "owner"}); err != nil {
					return err
				}
				_, err := q.UpdateOrganizationMemberRole(ctx, sqlc.UpdateOrganizationMemberRoleParams{ID: aliceMember.ID, Role: "admin"})
				return err
			})
			Expect(err).NotTo(HaveOccurred())

			err = database.AsUser(ctx, carol.ID, func(q *sqlc.Queries) error {
				got, err := q.GetOrganization(ctx, org.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.OwnerID).To(Equal(carol.ID))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("joining through an invite", func() {
		accept := func(user sqlc.Profile, inv sqlc.OrganizationInvite, role string) error {
			return database.AsUser(ctx, user.ID, func(q *sqlc.Queries) error {
				if _, err := q.AcceptOrganizationInvite(ctx, sqlc.AcceptOrganizationInviteParams{ID: inv.ID, AcceptedBy: &user.ID}); err != nil {
					return err
				}
				_, err := q.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
					OrganizationID: inv.OrganizationID,
					UserID:         user.ID,
					Role:           role,
				})
				return err
			})
		}

		join := func(user sqlc.Profile, role string) error {
			return database.AsUser(ctx, user.ID, func(q *sqlc.Queries) error {
				_, err := q.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
					OrganizationID: org.ID,
					UserID:         user.ID,
					Role:           role,
				})
				return err
			})
		}

		It("lets the invitee join with the invited role while accepting", func() {
			inv := inviteFor(ctx, alice, org, erin, "admin")

			Expect(accept(erin, inv, "admin")).To(Succeed())
		})

		It("refuses a role other than the invited one", func() {
			inv := inviteFor(ctx, alice, org, erin, "member")

			err := accept(erin, inv, "admin")

			Expect(sqlState(err)).To(Equal("42501"))
		})

		It("does not let a member who left rejoin on the old invite", func() {
			inv := inviteFor(ctx, alice, org, erin, "member")
			Expect(accept(erin, inv, "member")).To(Succeed())

			err := database.AsUser(ctx, erin.ID, func(q *sqlc.Queries) error {
				row, err := q.GetOrganizationMemberByUser(ctx, sqlc.GetOrganizationMemberByUserParams{OrganizationID: org.ID, UserID: erin.ID})
				if err != nil {
					return err
				}
				_, err = q.DeleteOrganizationMember(ctx, row.ID)
				return err
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(sqlState(join(erin, "member"))).To(Equal("42501"))
		})

		It("does not let another profile ride on someone else's acceptance", func() {
			inv := inviteFor(ctx, alice, org, erin, "member")
			Expect(accept(erin, inv, "member")).To(Succeed())

			Expect(sqlState(join(mallory, "member"))).To(Equal("42501"))
		})
	})
})
