package mongostore

import (
	"context"
	"time"

	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OutboxStore struct {
	coll *mongo.Collection
}

func NewOutboxStore(db *mongo.Database) *OutboxStore {
	return &OutboxStore{coll: db.Collection(outboxCollection)}
}

func (s *OutboxStore) Append(ctx context.Context, event shared.BookingEvent) error {
	if _, err := s.coll.InsertOne(ctx, toOutboxDocument(event)); err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}

// Drain publishes the oldest unpublished events and then marks them.
// Without row locks a second relay may resend a batch, so delivery is at least once.
func (s *OutboxStore) Drain(ctx context.Context, limit int, publish func(ctx context.Context, events []shared.BookingEvent) error) (int, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "occurredAt", Value: 1}}).
		SetLimit(int64(limit))
	cur, err := s.coll.Find(ctx, bson.D{{Key: "publishedAt", Value: nil}}, opts)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to fetch booking events", err)
	}
	var docs []outboxDocument
	if err := cur.All(ctx, &docs); err != nil {
		return 0, infra.WrapRepoErr("failed to decode booking events", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	events := make([]shared.BookingEvent, 0, len(docs))
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		e, err := d.toEvent()
		if err != nil {
			return 0, infra.WrapRepoErr("failed to convert booking event", err)
		}
		events = append(events, e)
		ids = append(ids, d.ID)
	}

	if err := publish(ctx, events); err != nil {
		return 0, err
	}

	_, err = s.coll.UpdateMany(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "publishedAt", Value: time.Now().UTC()}}}},
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark booking events published", err)
	}
	return len(events), nil
}
