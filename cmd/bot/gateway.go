package main

import (
	"github.com/Jacobbrewer1/discordgo"
	"github.com/devmofizur/ticketbot/pkg/ticket"
)

// sessionGateway adapts the discord session to the ticket.Gateway interface
// so the lifecycle never touches the session directly.
type sessionGateway struct {
	s *discordgo.Session
}

func newSessionGateway(s *discordgo.Session) ticket.Gateway {
	return &sessionGateway{s: s}
}

func (g *sessionGateway) Channel(channelID string) (*discordgo.Channel, error) {
	return g.s.Channel(channelID)
}

func (g *sessionGateway) GuildChannelCreate(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	return g.s.GuildChannelCreateComplex(guildID, data)
}

func (g *sessionGateway) ChannelEdit(channelID string, edit *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	return g.s.ChannelEditComplex(channelID, edit)
}

func (g *sessionGateway) ChannelDelete(channelID string) error {
	_, err := g.s.ChannelDelete(channelID)
	return err
}

func (g *sessionGateway) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error {
	return g.s.ChannelPermissionSet(channelID, targetID, targetType, allow, deny)
}

func (g *sessionGateway) ChannelMessageSend(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return g.s.ChannelMessageSendComplex(channelID, msg)
}

func (g *sessionGateway) GuildRoles(guildID string) ([]*discordgo.Role, error) {
	return g.s.GuildRoles(guildID)
}

func (g *sessionGateway) GuildRoleCreate(guildID, name string) (*discordgo.Role, error) {
	return g.s.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: name})
}

func (g *sessionGateway) GuildRoleRename(guildID, roleID, name string) error {
	_, err := g.s.GuildRoleEdit(guildID, roleID, &discordgo.RoleParams{Name: name})
	return err
}

func (g *sessionGateway) GuildRoleDelete(guildID, roleID string) error {
	return g.s.GuildRoleDelete(guildID, roleID)
}

func (g *sessionGateway) GuildMemberRoleAdd(guildID, userID, roleID string) error {
	return g.s.GuildMemberRoleAdd(guildID, userID, roleID)
}
