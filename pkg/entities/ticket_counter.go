package entities

// TicketCounter is the ticket number sequence for a guild.
type TicketCounter struct {
	// GuildID is the ID of the guild the counter belongs to.
	GuildID string `json:"guild_id" bson:"guild_id"`

	// Count is the number the next created ticket will take. Starts at 1 and
	// only ever increases; deleting a ticket never releases its number.
	Count int `json:"count" bson:"count"`
}
