package entities

// GuildConfig is the ticketing configuration for a guild. It is created with
// unset fields on first use and only ever mutated by the setup and category
// commands.
type GuildConfig struct {
	// GuildID is the ID of the guild the configuration belongs to.
	GuildID string `json:"guild_id" bson:"guild_id"`

	// SupportRoleID is the ID of the role that handles tickets. Empty until
	// an administrator has run the setup command. The role is not validated
	// at write time; callers check it still exists at use time.
	SupportRoleID string `json:"support_role_id" bson:"support_role_id"`

	// TicketCategoryID is the ID of the category channel that new ticket
	// channels are created under. Empty means tickets are created at the
	// guild root.
	TicketCategoryID string `json:"ticket_category_id" bson:"ticket_category_id"`
}
