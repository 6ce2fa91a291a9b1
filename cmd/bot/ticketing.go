package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/devmofizur/ticketbot/cmd/bot/monitoring"
	"github.com/devmofizur/ticketbot/pkg/logging"
	"github.com/devmofizur/ticketbot/pkg/messages"
	"github.com/devmofizur/ticketbot/pkg/ticket"
)

const (
	// opCreate is the metric label for ticket creation.
	opCreate = "create"

	// opClose is the metric label for closing a ticket.
	opClose = "close"

	// opReopen is the metric label for reopening a ticket.
	opReopen = "reopen"

	// opDelete is the metric label for deleting a ticket.
	opDelete = "delete"
)

// createTicketHandler opens a new ticket for the invoker.
func createTicketHandler(a IApp, i *discordgo.InteractionCreate) error {
	channel, err := a.Lifecycle().Create(context.Background(), i.GuildID, i.Member)
	if err != nil {
		return respondLifecycleError(a, i, opCreate, err)
	}

	monitoring.TicketOperations.WithLabelValues(opCreate, "ok").Inc()
	return respondEphemeral(a, i, fmt.Sprintf(messages.TicketCreated, channel.ID))
}

// closeTicketHandler closes the ticket of the channel the interaction ran in.
func closeTicketHandler(a IApp, i *discordgo.InteractionCreate) error {
	if err := a.Lifecycle().Close(context.Background(), i.GuildID, i.ChannelID, i.Member); err != nil {
		return respondLifecycleError(a, i, opClose, err)
	}

	monitoring.TicketOperations.WithLabelValues(opClose, "ok").Inc()
	return respondEphemeral(a, i, messages.TicketClosed)
}

// reopenTicketHandler reopens the closed ticket of the channel the
// interaction ran in.
func reopenTicketHandler(a IApp, i *discordgo.InteractionCreate) error {
	if err := a.Lifecycle().Reopen(context.Background(), i.GuildID, i.ChannelID, i.Member); err != nil {
		return respondLifecycleError(a, i, opReopen, err)
	}

	monitoring.TicketOperations.WithLabelValues(opReopen, "ok").Inc()
	return respondEphemeral(a, i, messages.TicketReopened)
}

// deleteTicketHandler deletes the ticket of the channel the interaction ran
// in. Staff only; there is no confirmation step.
func deleteTicketHandler(a IApp, i *discordgo.InteractionCreate) error {
	if err := a.Lifecycle().Delete(context.Background(), i.GuildID, i.ChannelID, i.Member); err != nil {
		return respondLifecycleError(a, i, opDelete, err)
	}

	monitoring.TicketOperations.WithLabelValues(opDelete, "ok").Inc()

	// The acknowledgement goes through the interaction webhook, so it still
	// reaches the invoker after the channel is gone; a failure here is not
	// worth surfacing.
	if err := respondEphemeral(a, i, messages.TicketDeleted); err != nil {
		a.Log().Debug("Could not acknowledge ticket deletion", slog.String(logging.KeyError, err.Error()))
	}
	return nil
}

// respondLifecycleError translates a lifecycle error into the user-facing
// refusal for the operation, or a generic error report when the failure came
// from the platform rather than a rule.
func respondLifecycleError(a IApp, i *discordgo.InteractionCreate, op string, err error) error {
	var content string
	switch {
	case errors.Is(err, ticket.ErrNotConfigured):
		content = messages.SetupIncomplete
	case errors.Is(err, ticket.ErrSupportRoleMissing):
		content = messages.SupportRoleNotFound
	case errors.Is(err, ticket.ErrUnauthorized):
		if op == opDelete {
			content = messages.DeleteStaffOnly
		} else {
			content = messages.ButtonNotAllowed
		}
	case errors.Is(err, ticket.ErrNotATicket):
		if op == opReopen {
			content = messages.NotAClosedTicketChannel
		} else {
			content = messages.NotATicketChannel
		}
	default:
		monitoring.TicketOperations.WithLabelValues(op, "error").Inc()
		a.Log().Error(fmt.Sprintf("Error performing ticket %s", op),
			slog.String(logging.KeyError, err.Error()))
		return respondEphemeral(a, i, fmt.Sprintf(messages.ErrGeneric, err.Error()))
	}

	monitoring.TicketOperations.WithLabelValues(op, "refused").Inc()
	return respondEphemeral(a, i, content)
}
