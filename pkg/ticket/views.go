package ticket

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
)

const (
	// CreateButtonID is the custom ID of the persistent create-ticket button.
	CreateButtonID = "create_ticket"

	// CloseButtonID is the custom ID of the close button.
	CloseButtonID = "close_ticket"

	// ReopenButtonID is the custom ID of the reopen button.
	ReopenButtonID = "reopen_ticket"

	// DeleteButtonID is the custom ID of the delete button.
	DeleteButtonID = "delete_ticket"
)

const (
	// TicketEmoji is the emoji used on the create button. (Ticket)
	TicketEmoji = "\U0001F3AB"

	// CloseEmoji is the emoji used on the close button. (Padlock)
	CloseEmoji = "\U0001F512"

	// ReopenEmoji is the emoji used on the reopen button. (Open padlock)
	ReopenEmoji = "\U0001F513"

	// DeleteEmoji is the emoji used on the delete button. (Wastebasket)
	DeleteEmoji = "\U0001F5D1️"
)

const (
	// colorGreen is used for success and open-state embeds.
	colorGreen = 0x00ff00

	// colorOrange is used for the closed-state warning embed.
	colorOrange = 0xffa500

	// colorNeutral is used for the ticket menu embed.
	colorNeutral = 0x2F3136
)

// MenuMessage is the persistent ticket-menu message carrying the create
// button. It is posted publicly so any member can open a ticket from it.
func MenuMessage() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Hello visitor, create a ticket to tell us your needs",
				Description: "To create a ticket use the Create ticket button\n\nOur team will respond as soon as possible",
				Color:       colorNeutral,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    fmt.Sprintf("%s Create Ticket", TicketEmoji),
						Style:    discordgo.SuccessButton,
						CustomID: CreateButtonID,
					},
				},
			},
		},
	}
}

// WelcomeMessage greets the creator inside a fresh ticket channel and
// carries the Close and Delete controls.
func WelcomeMessage(userID string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("%s Support Ticket Created", TicketEmoji),
				Description: fmt.Sprintf("Hello <@%s>, please wait while our team contacts you.", userID),
				Color:       colorGreen,
			},
		},
		Components: []discordgo.MessageComponent{controlRow(CloseButtonID, DeleteButtonID)},
	}
}

// ClosedMessage is the operational record posted into a ticket channel when
// it is closed, visible to everyone still in the channel. It carries the
// Reopen and Delete controls.
func ClosedMessage() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("%s Ticket Closed", CloseEmoji),
				Description: "This ticket has been closed. Use Reopen to open it again or Delete to remove it permanently.",
				Color:       colorOrange,
			},
		},
		Components: []discordgo.MessageComponent{controlRow(ReopenButtonID, DeleteButtonID)},
	}
}

// ReopenedMessage is posted into a ticket channel when it is reopened. It
// carries the Close and Delete controls again.
func ReopenedMessage() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("%s Ticket Reopened", ReopenEmoji),
				Description: "This ticket has been reopened. Our support team will get back to you shortly.",
				Color:       colorGreen,
			},
		},
		Components: []discordgo.MessageComponent{controlRow(CloseButtonID, DeleteButtonID)},
	}
}

// controlRow builds the action row of ticket control buttons for the given
// button IDs.
func controlRow(buttonIDs ...string) discordgo.ActionsRow {
	row := discordgo.ActionsRow{}
	for _, id := range buttonIDs {
		var button discordgo.Button
		switch id {
		case CloseButtonID:
			button = discordgo.Button{
				Label:    fmt.Sprintf("%s Close", CloseEmoji),
				Style:    discordgo.SecondaryButton,
				CustomID: CloseButtonID,
			}
		case ReopenButtonID:
			button = discordgo.Button{
				Label:    fmt.Sprintf("%s Reopen", ReopenEmoji),
				Style:    discordgo.SuccessButton,
				CustomID: ReopenButtonID,
			}
		case DeleteButtonID:
			button = discordgo.Button{
				Label:    fmt.Sprintf("%s Delete", DeleteEmoji),
				Style:    discordgo.DangerButton,
				CustomID: DeleteButtonID,
			}
		default:
			continue
		}
		row.Components = append(row.Components, button)
	}
	return row
}
