package main

import (
	"context"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/devmofizur/ticketbot/pkg/messages"
	"github.com/devmofizur/ticketbot/pkg/ticket"
)

const (
	// SetupCmdName is the command for setting the support role.
	SetupCmdName = "setup"

	// CategoryCmdName is the command for setting the ticket category.
	CategoryCmdName = "category"

	// TicketMenuCmdName is the command for posting the ticket menu.
	TicketMenuCmdName = "ticket-menu"

	// CloseCmdName is the command for closing the ticket of the current channel.
	CloseCmdName = "close"

	// DeleteCmdName is the command for deleting the ticket of the current channel.
	DeleteCmdName = "delete"
)

// adminPermission gates the configuration commands to server admins through
// discord's default member permissions.
var adminPermission int64 = discordgo.PermissionAdministrator

var (
	// setupCmd stores the support role for the guild.
	setupCmd = &discordgo.ApplicationCommand{
		Name:                     SetupCmdName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              "Set the support role that staff members hold.",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "role",
				Type:        discordgo.ApplicationCommandOptionRole,
				Description: "The role support staff hold.",
				Required:    true,
			},
		},
	}

	// categoryCmd stores the category new ticket channels are created under.
	categoryCmd = &discordgo.ApplicationCommand{
		Name:                     CategoryCmdName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              "Set the category that new ticket channels are created under.",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "category",
				Type:        discordgo.ApplicationCommandOptionChannel,
				Description: "The category for new ticket channels.",
				Required:    true,
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildCategory,
				},
			},
		},
	}

	// ticketMenuCmd posts the persistent create-ticket message.
	ticketMenuCmd = &discordgo.ApplicationCommand{
		Name:        TicketMenuCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "Post the ticket menu with the create-ticket button.",
	}

	// closeCmd closes the ticket of the channel it runs in.
	closeCmd = &discordgo.ApplicationCommand{
		Name:        CloseCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "Close the ticket of the current channel.",
	}

	// deleteCmd deletes the ticket of the channel it runs in.
	deleteCmd = &discordgo.ApplicationCommand{
		Name:        DeleteCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "Delete the ticket of the current channel.",
	}
)

// setupCmdProcessor stores the chosen support role for the guild.
func setupCmdProcessor(a IApp, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" {
		return respondEphemeral(a, i, messages.GuildOnly)
	}

	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		return respondError(a, i)
	}

	role := opts[0].RoleValue(a.Session(), i.GuildID)
	if role == nil {
		return respondError(a, i)
	}

	if err := a.ConfigDal().SetSupportRole(context.Background(), i.GuildID, role.ID); err != nil {
		return fmt.Errorf("error storing support role: %w", err)
	}

	return respondEphemeral(a, i, fmt.Sprintf(messages.SupportRoleSet, role.ID))
}

// categoryCmdProcessor stores the chosen ticket category for the guild.
func categoryCmdProcessor(a IApp, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" {
		return respondEphemeral(a, i, messages.GuildOnly)
	}

	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		return respondError(a, i)
	}

	// The command option restricts the type, but an option value is not
	// trusted over the channel it resolves to.
	channel := opts[0].ChannelValue(a.Session())
	if channel == nil || channel.Type != discordgo.ChannelTypeGuildCategory {
		return respondEphemeral(a, i, messages.CategoryRequired)
	}

	if err := a.ConfigDal().SetTicketCategory(context.Background(), i.GuildID, channel.ID); err != nil {
		return fmt.Errorf("error storing ticket category: %w", err)
	}

	return respondEphemeral(a, i, fmt.Sprintf(messages.TicketCategorySet, channel.Name))
}

// ticketMenuCmdProcessor posts the ticket menu publicly as the command
// response so any member can open a ticket from it.
func ticketMenuCmdProcessor(a IApp, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" {
		return respondEphemeral(a, i, messages.GuildOnly)
	}

	menu := ticket.MenuMessage()
	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     menu.Embeds,
			Components: menu.Components,
		},
	})
}
