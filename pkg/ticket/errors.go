package ticket

import "errors"

var (
	// ErrNotConfigured is returned when no support role has been stored for
	// the guild yet.
	ErrNotConfigured = errors.New("ticketing is not configured for this guild")

	// ErrSupportRoleMissing is returned when the stored support role no
	// longer exists in the guild. A missing role never widens access; the
	// staff membership test simply fails.
	ErrSupportRoleMissing = errors.New("configured support role no longer exists")

	// ErrUnauthorized is returned when the caller is neither the ticket
	// creator nor support staff for the operation they attempted.
	ErrUnauthorized = errors.New("caller is not allowed to perform this operation")

	// ErrNotATicket is returned for operations against a channel whose name
	// does not carry the expected ticket prefix.
	ErrNotATicket = errors.New("channel is not a ticket channel")
)
