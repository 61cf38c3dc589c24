package service

import "errors"

// Messages below are shown to end users verbatim.
var (
	ErrInvalidSlug             = errors.New("Invalid organization slug")
	ErrInvalidOrgName          = errors.New("Organization name must be between 1 and 255 characters")
	ErrInvalidOrgID            = errors.New("Invalid organization ID")
	ErrInvalidMemberID         = errors.New("Invalid member ID")
	ErrInvalidUserID           = errors.New("Invalid user ID")
	ErrInvalidInviteID         = errors.New("Invalid invitation ID")
	ErrInvalidEmail            = errors.New("Invalid email address")
	ErrInvalidRole             = errors.New("Invalid role")
	ErrCannotAssignOwner       = errors.New("Cannot assign owner role. Use transfer ownership instead.")
	ErrNotAuthenticated        = errors.New("Not authenticated")
	ErrOrganizationNotFound    = errors.New("Organization not found")
	ErrMemberNotFound          = errors.New("Member not found")
	ErrUserNotFound            = errors.New("No user found with this email address")
	ErrAlreadyMember           = errors.New("User is already a member of this organization")
	ErrNotAuthorized           = errors.New("You do not have permission to perform this action")
	ErrSlugTaken               = errors.New("An organization with this slug already exists")
	ErrCannotChangeSelf        = errors.New("Cannot change your own role")
	ErrCannotChangeOwner       = errors.New("Cannot change the owner's role")
	ErrCannotRemoveSelf        = errors.New("Cannot remove yourself. Use leave organization instead.")
	ErrCannotRemoveOwner       = errors.New("Cannot remove the organization owner")
	ErrCannotTransferToSelf    = errors.New("Cannot transfer ownership to yourself")
	ErrNotOwner                = errors.New("Only the organization owner can transfer ownership")
	ErrNewOwnerNotMember       = errors.New("New owner must be a member of the organization")
	ErrFetchOwnerMembership    = errors.New("Failed to fetch current owner membership")
	ErrTransferFailed          = errors.New("Failed to transfer ownership")
	ErrNewOwnerRoleFailed      = errors.New("Failed to update new owner's role")
	ErrPreviousOwnerRoleFailed = errors.New("Failed to update previous owner's role")
	ErrNotMember               = errors.New("You are not a member of this organization")
	ErrOwnerCannotLeave        = errors.New("Owners cannot leave. Transfer ownership first.")

	ErrInviteNotFound      = errors.New("Invitation not found")
	ErrInviteExpired       = errors.New("Invitation has expired")
	ErrInviteAlreadyUsed   = errors.New("Invitation has already been used")
	ErrInviteRevoked       = errors.New("Invitation has been revoked")
	ErrEmailMismatch       = errors.New("Signed-in email does not match the invitation")
	ErrInvitePendingExists = errors.New("A pending invitation already exists for this email")

	ErrInvalidCode    = errors.New("Invalid authorization code")
	ErrSessionExpired = errors.New("Session expired")
)

// UnexpectedErrorMessage replaces any error that is not one of the sentinels above.
const UnexpectedErrorMessage = "An unexpected error occurred"

// ErrorKind groups sentinels by how a transport should report them.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindInvalidInput
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidSlug, KindInvalidInput},
	{ErrInvalidOrgName, KindInvalidInput},
	{ErrInvalidOrgID, KindInvalidInput},
	{ErrInvalidMemberID, KindInvalidInput},
	{ErrInvalidUserID, KindInvalidInput},
	{ErrInvalidInviteID, KindInvalidInput},
	{ErrInvalidEmail, KindInvalidInput},
	{ErrInvalidRole, KindInvalidInput},
	{ErrCannotAssignOwner, KindInvalidInput},
	{ErrInvalidCode, KindInvalidInput},

	{ErrNotAuthenticated, KindUnauthenticated},
	{ErrSessionExpired, KindUnauthenticated},

	{ErrNotAuthorized, KindForbidden},
	{ErrCannotChangeSelf, KindForbidden},
	{ErrCannotChangeOwner, KindForbidden},
	{ErrCannotRemoveSelf, KindForbidden},
	{ErrCannotRemoveOwner, KindForbidden},
	{ErrCannotTransferToSelf, KindForbidden},
	{ErrNotOwner, KindForbidden},
	{ErrNewOwnerNotMember, KindForbidden},
	{ErrNotMember, KindForbidden},
	{ErrOwnerCannotLeave, KindForbidden},
	{ErrEmailMismatch, KindForbidden},

	{ErrOrganizationNotFound, KindNotFound},
	{ErrMemberNotFound, KindNotFound},
	{ErrUserNotFound, KindNotFound},
	{ErrInviteNotFound, KindNotFound},

	{ErrAlreadyMember, KindConflict},
	{ErrSlugTaken, KindConflict},
	{ErrInvitePendingExists, KindConflict},
	{ErrInviteExpired, KindConflict},
	{ErrInviteAlreadyUsed, KindConflict},
	{ErrInviteRevoked, KindConflict},

	{ErrFetchOwnerMembership, KindUnexpected},
	{ErrTransferFailed, KindUnexpected},
	{ErrNewOwnerRoleFailed, KindUnexpected},
	{ErrPreviousOwnerRoleFailed, KindUnexpected},
}

// Classify returns the kind of err and the message safe to show the caller.
// Errors that match no sentinel are reported as unexpected with a generic message.
func Classify(err error) (ErrorKind, string) {
	for _, e := range errorKinds {
		if errors.Is(err, e.err) {
			return e.kind, e.err.Error()
		}
	}
	return KindUnexpected, UnexpectedErrorMessage
}
