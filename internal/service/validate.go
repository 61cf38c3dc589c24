package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/InsightsLog/Insights-sub001/common"
	"github.com/InsightsLog/Insights-sub001/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("org_slug", func(fl validator.FieldLevel) bool {
		return common.IsValidSlug(fl.Field().String())
	})
	_ = v.RegisterValidation("member_role", func(fl validator.FieldLevel) bool {
		switch model.Role(fl.Field().String()) {
		case model.RoleOwner, model.RoleAdmin, model.RoleBillingAdmin, model.RoleMember:
			return true
		}
		return false
	})
	return v
}

func parseID(raw string, invalid error) (uuid.UUID, error) {
	// the uuid tag only matches lowercase hex
	if err := validate.Var(strings.ToLower(raw), "required,uuid"); err != nil {
		return uuid.Nil, invalid
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalid
	}
	return id, nil
}

func validateSlug(slug string) error {
	if err := validate.Var(slug, "required,org_slug"); err != nil {
		return ErrInvalidSlug
	}
	return nil
}

func validateOrgName(name string) error {
	if err := validate.Var(name, "required,min=1,max=255"); err != nil {
		return ErrInvalidOrgName
	}
	return nil
}

// normalizeEmail trims and lowercases email, which is how invitations and
// profile lookups compare addresses.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email,max=320"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// inviteRole resolves the role for an invitation. Empty means member; owner
// is rejected with its own message.
func inviteRole(raw string) (model.Role, error) {
	if raw == "" {
		return model.RoleMember, nil
	}
	if err := validate.Var(raw, "member_role"); err != nil {
		return "", ErrInvalidRole
	}
	role := model.Role(raw)
	if role == model.RoleOwner {
		return "", ErrCannotAssignOwner
	}
	return role, nil
}

// assignableRole is inviteRole without the default: role updates must name a role.
func assignableRole(raw string) (model.Role, error) {
	if raw == "" {
		return "", ErrInvalidRole
	}
	return inviteRole(raw)
}
