// Package ticket implements the ticket lifecycle state machine: the rules
// governing how a ticket channel and its paired access-control role move
// between the open, closed and deleted states.
//
// A ticket is never persisted. It is inferred from platform state: a channel
// named "ticket-<NNN>" (open) or "closed-<NNN>" (closed) paired with a role
// of the identical name. Every transition keeps the two names in lockstep.
package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/devmofizur/ticketbot/pkg/dataaccess"
	"github.com/devmofizur/ticketbot/pkg/logging"
)

// readWritePermissions is what the support role and the per-ticket role get
// on an open ticket channel.
const readWritePermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// Lifecycle drives tickets through the open/closed/deleted state machine.
// The guild configuration is loaded fresh on every operation so concurrent
// edits through the setup commands are always honoured.
type Lifecycle struct {
	// l is the logger.
	l *slog.Logger

	// gw is the discord gateway the transitions are issued against.
	gw Gateway

	// configs is the guild configuration store.
	configs dataaccess.ConfigDal

	// counters is the ticket number store.
	counters dataaccess.CounterDal

	// createMu serializes the peek-create-advance sequence so concurrent
	// creations never share a ticket number.
	createMu sync.Mutex
}

// NewLifecycle creates a new ticket lifecycle.
func NewLifecycle(l *slog.Logger, gw Gateway, configs dataaccess.ConfigDal, counters dataaccess.CounterDal) *Lifecycle {
	return &Lifecycle{
		l:        l,
		gw:       gw,
		configs:  configs,
		counters: counters,
	}
}

// Create opens a new ticket for caller: a private text channel named from
// the next counter value, plus a role of the same name granted to the
// caller. The counter only advances once every step has succeeded, so a
// failed creation does not burn a number.
func (lc *Lifecycle) Create(ctx context.Context, guildID string, caller *discordgo.Member) (*discordgo.Channel, error) {
	cfg, err := lc.configs.GetConfig(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("error getting guild config: %w", err)
	}
	if cfg.SupportRoleID == "" {
		return nil, ErrNotConfigured
	}

	// The stored role may have been deleted since setup ran.
	roles, err := lc.gw.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("error listing guild roles: %w", err)
	}
	if findRoleByID(roles, cfg.SupportRoleID) == nil {
		return nil, ErrSupportRoleMissing
	}

	lc.createMu.Lock()
	defer lc.createMu.Unlock()

	num, err := lc.counters.Peek(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("error reading ticket counter: %w", err)
	}
	name := ChannelName(num)

	data := discordgo.GuildChannelCreateData{
		Name:  name,
		Type:  discordgo.ChannelTypeGuildText,
		Topic: fmt.Sprintf("Ticket created by %s", caller.User.Username),
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			// Deny @everyone from seeing the ticket.
			{
				ID:   guildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			// The support role can read and write.
			{
				ID:    cfg.SupportRoleID,
				Type:  discordgo.PermissionOverwriteTypeRole,
				Allow: readWritePermissions,
			},
		},
	}

	// A configured category may have been deleted since it was stored; fall
	// back to the guild root rather than refusing the ticket.
	if cfg.TicketCategoryID != "" {
		if _, err := lc.gw.Channel(cfg.TicketCategoryID); err != nil {
			lc.l.Warn("Configured ticket category is not reachable, creating ticket at guild root",
				slog.String("category_id", cfg.TicketCategoryID),
				slog.String(logging.KeyError, err.Error()),
			)
		} else {
			data.ParentID = cfg.TicketCategoryID
		}
	}

	channel, err := lc.gw.GuildChannelCreate(guildID, data)
	if err != nil {
		return nil, fmt.Errorf("error creating ticket channel: %w", err)
	}

	role, err := lc.gw.GuildRoleCreate(guildID, name)
	if err != nil {
		return nil, fmt.Errorf("error creating ticket role: %w", err)
	}

	// The creator holds the per-ticket role from here on; it is what later
	// identifies them as the creator for close and reopen.
	if err := lc.gw.GuildMemberRoleAdd(guildID, caller.User.ID, role.ID); err != nil {
		return nil, fmt.Errorf("error granting ticket role: %w", err)
	}

	if err := lc.gw.ChannelPermissionSet(channel.ID, role.ID, discordgo.PermissionOverwriteTypeRole, readWritePermissions, 0); err != nil {
		return nil, fmt.Errorf("error setting ticket role permissions: %w", err)
	}

	if _, err := lc.gw.ChannelMessageSend(channel.ID, WelcomeMessage(caller.User.ID)); err != nil {
		return nil, fmt.Errorf("error sending welcome message: %w", err)
	}

	if err := lc.counters.Advance(ctx, guildID); err != nil {
		return nil, fmt.Errorf("error advancing ticket counter: %w", err)
	}

	lc.l.Info("Ticket created",
		slog.String("guild_id", guildID),
		slog.String("channel", name),
		slog.String("user_id", caller.User.ID),
	)
	return channel, nil
}

// Close moves an open ticket to the closed state: channel and paired role
// are renamed to the closed prefix in lockstep and the role loses read
// access to the channel. The role steps are independent of the channel
// rename; a manually deleted role is skipped, not fatal.
func (lc *Lifecycle) Close(ctx context.Context, guildID, channelID string, caller *discordgo.Member) error {
	channel, err := lc.gw.Channel(channelID)
	if err != nil {
		return fmt.Errorf("error getting channel: %w", err)
	}
	if StateOf(channel.Name) != StateOpen {
		return ErrNotATicket
	}

	supportRole, pairedRole, err := lc.ticketRoles(ctx, guildID, channel.Name)
	if err != nil {
		return err
	}
	if !CanManage(caller, supportRole, pairedRole) {
		return ErrUnauthorized
	}

	newName := Renamed(channel.Name, StateClosed)
	if _, err := lc.gw.ChannelEdit(channel.ID, &discordgo.ChannelEdit{Name: newName}); err != nil {
		return fmt.Errorf("error renaming channel: %w", err)
	}

	// Keep the role name in lockstep with the channel and drop its read
	// access to it.
	if pairedRole != nil {
		if err := lc.gw.GuildRoleRename(guildID, pairedRole.ID, newName); err != nil {
			return fmt.Errorf("error renaming ticket role: %w", err)
		}
		if err := lc.gw.ChannelPermissionSet(channel.ID, pairedRole.ID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionViewChannel); err != nil {
			return fmt.Errorf("error revoking ticket role access: %w", err)
		}
	}

	if _, err := lc.gw.ChannelMessageSend(channel.ID, ClosedMessage()); err != nil {
		return fmt.Errorf("error sending closed message: %w", err)
	}

	lc.l.Info("Ticket closed",
		slog.String("guild_id", guildID),
		slog.String("channel", newName),
		slog.String("user_id", caller.User.ID),
	)
	return nil
}

// Reopen moves a closed ticket back to the open state. If the paired role
// was deleted while the ticket was closed it is recreated under the new name
// rather than failing the operation.
func (lc *Lifecycle) Reopen(ctx context.Context, guildID, channelID string, caller *discordgo.Member) error {
	channel, err := lc.gw.Channel(channelID)
	if err != nil {
		return fmt.Errorf("error getting channel: %w", err)
	}
	if StateOf(channel.Name) != StateClosed {
		return ErrNotATicket
	}

	supportRole, pairedRole, err := lc.ticketRoles(ctx, guildID, channel.Name)
	if err != nil {
		return err
	}
	if !CanManage(caller, supportRole, pairedRole) {
		return ErrUnauthorized
	}

	newName := Renamed(channel.Name, StateOpen)
	if _, err := lc.gw.ChannelEdit(channel.ID, &discordgo.ChannelEdit{Name: newName}); err != nil {
		return fmt.Errorf("error renaming channel: %w", err)
	}

	if pairedRole != nil {
		if err := lc.gw.GuildRoleRename(guildID, pairedRole.ID, newName); err != nil {
			return fmt.Errorf("error renaming ticket role: %w", err)
		}
	} else {
		// The role was removed while the ticket was closed.
		pairedRole, err = lc.gw.GuildRoleCreate(guildID, newName)
		if err != nil {
			return fmt.Errorf("error recreating ticket role: %w", err)
		}
	}

	if err := lc.gw.ChannelPermissionSet(channel.ID, pairedRole.ID, discordgo.PermissionOverwriteTypeRole, readWritePermissions, 0); err != nil {
		return fmt.Errorf("error restoring ticket role access: %w", err)
	}

	if _, err := lc.gw.ChannelMessageSend(channel.ID, ReopenedMessage()); err != nil {
		return fmt.Errorf("error sending reopened message: %w", err)
	}

	lc.l.Info("Ticket reopened",
		slog.String("guild_id", guildID),
		slog.String("channel", newName),
		slog.String("user_id", caller.User.ID),
	)
	return nil
}

// Delete tears a ticket down: the paired role first, then the channel
// itself. Support staff only; there is no confirmation step and no way back.
func (lc *Lifecycle) Delete(ctx context.Context, guildID, channelID string, caller *discordgo.Member) error {
	channel, err := lc.gw.Channel(channelID)
	if err != nil {
		return fmt.Errorf("error getting channel: %w", err)
	}
	if StateOf(channel.Name) == StateNone {
		return ErrNotATicket
	}

	cfg, err := lc.configs.GetConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("error getting guild config: %w", err)
	}
	if cfg.SupportRoleID == "" {
		return ErrNotConfigured
	}

	roles, err := lc.gw.GuildRoles(guildID)
	if err != nil {
		return fmt.Errorf("error listing guild roles: %w", err)
	}
	supportRole := findRoleByID(roles, cfg.SupportRoleID)
	if supportRole == nil {
		// A vanished support role must not silently widen access to a
		// staff-only operation.
		return ErrSupportRoleMissing
	}
	if !hasRole(caller, supportRole.ID) {
		return ErrUnauthorized
	}

	if pairedRole := findRoleByName(roles, channel.Name); pairedRole != nil {
		if err := lc.gw.GuildRoleDelete(guildID, pairedRole.ID); err != nil {
			return fmt.Errorf("error deleting ticket role: %w", err)
		}
	}

	if err := lc.gw.ChannelDelete(channel.ID); err != nil {
		return fmt.Errorf("error deleting channel: %w", err)
	}

	lc.l.Info("Ticket deleted",
		slog.String("guild_id", guildID),
		slog.String("channel", channel.Name),
		slog.String("user_id", caller.User.ID),
	)
	return nil
}

// ticketRoles resolves the support role and the ticket's paired role for the
// guild. Either can come back nil when it no longer exists.
func (lc *Lifecycle) ticketRoles(ctx context.Context, guildID, channelName string) (supportRole, pairedRole *discordgo.Role, err error) {
	cfg, err := lc.configs.GetConfig(ctx, guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting guild config: %w", err)
	}

	roles, err := lc.gw.GuildRoles(guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing guild roles: %w", err)
	}

	if cfg.SupportRoleID != "" {
		supportRole = findRoleByID(roles, cfg.SupportRoleID)
	}
	return supportRole, findRoleByName(roles, channelName), nil
}

// CanManage reports whether member may close or reopen the ticket paired
// with ticketRole: either they hold the ticket role itself (the creator was
// granted it at creation) or they hold the support role. A role that no
// longer exists never grants access.
func CanManage(member *discordgo.Member, supportRole, ticketRole *discordgo.Role) bool {
	if ticketRole != nil && hasRole(member, ticketRole.ID) {
		return true
	}
	return supportRole != nil && hasRole(member, supportRole.ID)
}

func hasRole(member *discordgo.Member, roleID string) bool {
	for _, id := range member.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}

func findRoleByID(roles []*discordgo.Role, id string) *discordgo.Role {
	for _, r := range roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func findRoleByName(roles []*discordgo.Role, name string) *discordgo.Role {
	for _, r := range roles {
		if r.Name == name {
			return r
		}
	}
	return nil
}
