package dataaccess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devmofizur/ticketbot/pkg/dataaccess/monitoring"
	"github.com/devmofizur/ticketbot/pkg/entities"
	"github.com/devmofizur/ticketbot/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	configDalName = "config_dal"

	// configCollection holds one GuildConfig document per guild.
	configCollection = "guild_configs"
)

// ConfigDal is the data access layer for guild ticketing configuration.
type ConfigDal interface {
	// GetConfig gets the configuration for a guild. A guild with no stored
	// configuration gets a record with unset fields, not an error.
	GetConfig(ctx context.Context, guildID string) (*entities.GuildConfig, error)

	// SetSupportRole stores the support role for a guild, leaving other
	// fields untouched.
	SetSupportRole(ctx context.Context, guildID, roleID string) error

	// SetTicketCategory stores the ticket category for a guild, leaving
	// other fields untouched.
	SetTicketCategory(ctx context.Context, guildID, categoryID string) error
}

type configDalImpl struct {
	// l is the logger.
	l *slog.Logger

	// client is the database.
	client *mongo.Client
}

// NewConfigDal creates a new config data access layer.
func NewConfigDal() ConfigDal {
	l := slog.Default().With(slog.String(logging.KeyDal, configDalName))

	if MongoDB == nil {
		l.Warn("MongoDB is nil, this can cause a panic. Proceeding...")
	}

	return &configDalImpl{
		l:      l,
		client: MongoDB,
	}
}

func (c *configDalImpl) GetConfig(ctx context.Context, guildID string) (*entities.GuildConfig, error) {
	collection := c.client.Database(mongoDatabase).Collection(configCollection)

	// Start the prometheus metrics.
	monitoring.MongoTotalRequests.WithLabelValues(configDalName, "get_config", mongoDatabase, configCollection).Inc()
	t := prometheus.NewTimer(monitoring.MongoLatency.WithLabelValues(configDalName, "get_config", mongoDatabase, configCollection))
	defer t.ObserveDuration()

	cfg := new(entities.GuildConfig)
	err := collection.FindOne(ctx, bson.M{"guild_id": guildID}).Decode(cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// First use for this guild; default to an unset configuration.
		return &entities.GuildConfig{GuildID: guildID}, nil
	} else if err != nil {
		return nil, fmt.Errorf("error getting guild config: %w", err)
	}
	return cfg, nil
}

func (c *configDalImpl) SetSupportRole(ctx context.Context, guildID, roleID string) error {
	return c.setField(ctx, guildID, "support_role_id", roleID, "set_support_role")
}

func (c *configDalImpl) SetTicketCategory(ctx context.Context, guildID, categoryID string) error {
	return c.setField(ctx, guildID, "ticket_category_id", categoryID, "set_ticket_category")
}

// setField upserts a single field of the guild configuration, merging into
// whatever is already stored.
func (c *configDalImpl) setField(ctx context.Context, guildID, field, value, query string) error {
	collection := c.client.Database(mongoDatabase).Collection(configCollection)

	// Start the prometheus metrics.
	monitoring.MongoTotalRequests.WithLabelValues(configDalName, query, mongoDatabase, configCollection).Inc()
	t := prometheus.NewTimer(monitoring.MongoLatency.WithLabelValues(configDalName, query, mongoDatabase, configCollection))
	defer t.ObserveDuration()

	opts := options.Update().SetUpsert(true)
	_, err := collection.UpdateOne(ctx,
		bson.M{"guild_id": guildID},
		bson.M{"$set": bson.M{"guild_id": guildID, field: value}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("error updating guild config: %w", err)
	}
	return nil
}
