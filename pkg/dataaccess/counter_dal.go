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
)

const (
	counterDalName = "counter_dal"

	// counterCollection holds one TicketCounter document per guild.
	counterCollection = "ticket_counters"
)

// CounterDal is the data access layer for the per-guild ticket counter. The
// counter only ever moves forward; numbers are never reused, even when the
// ticket that took them is deleted.
type CounterDal interface {
	// Peek returns the number the next ticket will take without consuming
	// it. A guild with no counter yet gets one initialised at 1.
	Peek(ctx context.Context, guildID string) (int, error)

	// Advance consumes the current number. Call it only once the ticket has
	// been fully created; a failed creation leaves the counter unchanged.
	Advance(ctx context.Context, guildID string) error
}

type counterDalImpl struct {
	// l is the logger.
	l *slog.Logger

	// client is the database.
	client *mongo.Client
}

// NewCounterDal creates a new counter data access layer.
func NewCounterDal() CounterDal {
	l := slog.Default().With(slog.String(logging.KeyDal, counterDalName))

	if MongoDB == nil {
		l.Warn("MongoDB is nil, this can cause a panic. Proceeding...")
	}

	return &counterDalImpl{
		l:      l,
		client: MongoDB,
	}
}

func (c *counterDalImpl) Peek(ctx context.Context, guildID string) (int, error) {
	collection := c.client.Database(mongoDatabase).Collection(counterCollection)

	// Start the prometheus metrics.
	monitoring.MongoTotalRequests.WithLabelValues(counterDalName, "peek", mongoDatabase, counterCollection).Inc()
	t := prometheus.NewTimer(monitoring.MongoLatency.WithLabelValues(counterDalName, "peek", mongoDatabase, counterCollection))
	defer t.ObserveDuration()

	counter := new(entities.TicketCounter)
	err := collection.FindOne(ctx, bson.M{"guild_id": guildID}).Decode(counter)
	if errors.Is(err, mongo.ErrNoDocuments) {
		counter = &entities.TicketCounter{
			GuildID: guildID,
			Count:   1,
		}
		if _, err := collection.InsertOne(ctx, counter); err != nil {
			return 0, fmt.Errorf("error initialising ticket counter: %w", err)
		}
		return counter.Count, nil
	} else if err != nil {
		return 0, fmt.Errorf("error getting ticket counter: %w", err)
	}
	return counter.Count, nil
}

func (c *counterDalImpl) Advance(ctx context.Context, guildID string) error {
	collection := c.client.Database(mongoDatabase).Collection(counterCollection)

	// Start the prometheus metrics.
	monitoring.MongoTotalRequests.WithLabelValues(counterDalName, "advance", mongoDatabase, counterCollection).Inc()
	t := prometheus.NewTimer(monitoring.MongoLatency.WithLabelValues(counterDalName, "advance", mongoDatabase, counterCollection))
	defer t.ObserveDuration()

	res, err := collection.UpdateOne(ctx,
		bson.M{"guild_id": guildID},
		bson.M{"$inc": bson.M{"count": 1}},
	)
	if err != nil {
		return fmt.Errorf("error advancing ticket counter: %w", err)
	}
	if res.MatchedCount == 0 {
		// Peek initialises the document, so an advance without one is a
		// caller ordering bug.
		return fmt.Errorf("no ticket counter for guild %s", guildID)
	}
	return nil
}
