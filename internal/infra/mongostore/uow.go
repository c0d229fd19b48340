package mongostore

import (
	"context"

	"campsite-reservation/internal/infra/lock"
	"campsite-reservation/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUoW serializes units of work with a Locker instead of a database lock.
// Work is cut off when the lock lease runs out so it never runs unguarded.
// Writes are not rolled back: a failure after the booking write leaves the
// booking without its outbox event.
type MongoUoW struct {
	db     *mongo.Database
	locker lock.Locker
}

func NewMongoUoW(db *mongo.Database, locker lock.Locker) *MongoUoW {
	return &MongoUoW{db: db, locker: locker}
}

func (u *MongoUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	release, err := u.locker.Acquire(ctx, lock.CampsiteKey)
	if err != nil {
		return err
	}
	defer release()

	if lease := u.locker.Lease(); lease > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, lease)
		defer cancel()
	}

	return fn(ctx, &mongoTx{
		bookings: NewBookingStore(u.db),
		outbox:   NewOutboxStore(u.db),
	})
}

type mongoTx struct {
	bookings *BookingStore
	outbox   *OutboxStore
}

func (t *mongoTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *mongoTx) Outbox() shared.OutboxRepository    { return t.outbox }
