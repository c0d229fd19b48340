package mongostore

import (
	"context"

	"campsite-reservation/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the overlap query and the relay rely on.
// It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(bookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "dateFrom", Value: 1}, {Key: "dateTo", Value: 1}},
		Options: options.Index().SetName("bookings_date_range"),
	})
	if err != nil {
		return errs.Wrap(err, "failed to create bookings index")
	}

	_, err = db.Collection(outboxCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "publishedAt", Value: 1}, {Key: "occurredAt", Value: 1}},
		Options: options.Index().SetName("booking_outbox_unpublished"),
	})
	if err != nil {
		return errs.Wrap(err, "failed to create outbox index")
	}
	return nil
}
