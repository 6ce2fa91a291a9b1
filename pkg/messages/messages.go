// Package messages holds every user-facing response string, so the wording
// lives in one place. Permission and refusal messages carry the cross-mark
// prefix and are always delivered ephemerally.
package messages

const (
	// ErrUserErrorProcessing is the generic message for an interaction that
	// failed for an internal reason.
	ErrUserErrorProcessing = "We had an issue processing your request, please try again later"

	// GuildOnly is sent when a guild-only command runs outside a server.
	GuildOnly = "❌ This command can only be used in a server."

	// SetupIncomplete is sent when no support role has been configured yet.
	SetupIncomplete = "❌ Setup not complete. Ask admin to run `/setup`."

	// SupportRoleNotFound is sent when the configured support role no longer
	// exists in the guild.
	SupportRoleNotFound = "❌ Support role not found. Please run `/setup` again."

	// NotATicketChannel is sent for ticket operations against a channel whose
	// name does not carry a ticket prefix.
	NotATicketChannel = "❌ This is not a ticket channel."

	// NotAClosedTicketChannel is sent for a reopen against a channel that is
	// not a closed ticket.
	NotAClosedTicketChannel = "❌ This is not a closed ticket channel."

	// ButtonNotAllowed is sent when the caller is neither the ticket creator
	// nor support staff.
	ButtonNotAllowed = "❌ You don't have permission to use this button."

	// DeleteStaffOnly is sent when a non-staff member tries to delete a ticket.
	DeleteStaffOnly = "❌ Only support staff can delete tickets."

	// RateLimited is sent when a user is clicking faster than the limiter allows.
	RateLimited = "❌ You are clicking too fast, please slow down."

	// ErrGeneric reports a platform failure with the underlying reason.
	ErrGeneric = "❌ An error occurred: %s"

	// TicketClosed confirms a close to the invoker.
	TicketClosed = "\U0001F512 Ticket closed."

	// TicketReopened confirms a reopen to the invoker.
	TicketReopened = "\U0001F504 Ticket reopened."

	// TicketDeleted confirms a deletion to the invoker.
	TicketDeleted = "\U0001F5D1️ Ticket deleted."

	// TicketCreated confirms a creation to the invoker. Takes the channel ID.
	TicketCreated = "✅ Created ticket: <#%s>"

	// SupportRoleSet confirms the setup command. Takes the role ID.
	SupportRoleSet = "✅ Support role set as <@&%s>"

	// TicketCategorySet confirms the category command. Takes the category name.
	TicketCategorySet = "✅ Ticket category set to %s."

	// CategoryRequired is sent when the category command is given a channel
	// that is not a category.
	CategoryRequired = "❌ You must provide a category channel."
)
