package ticket

import (
	"github.com/Jacobbrewer1/discordgo"
)

// Gateway is the subset of the discord session that the lifecycle drives.
// Discord owns the actual channel and role objects; every call here can fail
// independently of the others, so multi-step transitions are not
// transactional and partial state is reported rather than rolled back.
type Gateway interface {
	// Channel gets a channel by ID.
	Channel(channelID string) (*discordgo.Channel, error)

	// GuildChannelCreate creates a channel in a guild.
	GuildChannelCreate(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error)

	// ChannelEdit edits a channel.
	ChannelEdit(channelID string, edit *discordgo.ChannelEdit) (*discordgo.Channel, error)

	// ChannelDelete deletes a channel.
	ChannelDelete(channelID string) error

	// ChannelPermissionSet writes a permission overwrite on a channel.
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error

	// ChannelMessageSend sends a message to a channel.
	ChannelMessageSend(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)

	// GuildRoles lists the roles of a guild.
	GuildRoles(guildID string) ([]*discordgo.Role, error)

	// GuildRoleCreate creates a role with the given name.
	GuildRoleCreate(guildID, name string) (*discordgo.Role, error)

	// GuildRoleRename renames a role.
	GuildRoleRename(guildID, roleID, name string) error

	// GuildRoleDelete deletes a role.
	GuildRoleDelete(guildID, roleID string) error

	// GuildMemberRoleAdd grants a role to a guild member.
	GuildMemberRoleAdd(guildID, userID, roleID string) error
}
