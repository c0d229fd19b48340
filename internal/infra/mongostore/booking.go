package mongostore

import (
	"context"
	"errors"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingStore struct {
	coll *mongo.Collection
}

func NewBookingStore(db *mongo.Database) *BookingStore {
	return &BookingStore{coll: db.Collection(bookingsCollection)}
}

func (s *BookingStore) FindOverlapping(ctx context.Context, q booking.DateRange) ([]*booking.Booking, error) {
	return s.findOverlapping(ctx, overlapFilter(q, nil))
}

func (s *BookingStore) FindOverlappingExcluding(ctx context.Context, q booking.DateRange, excludeID uuid.UUID) ([]*booking.Booking, error) {
	return s.findOverlapping(ctx, overlapFilter(q, &excludeID))
}

// overlapFilter matches the same bordering-inclusive predicate as the SQL store.
func overlapFilter(q booking.DateRange, excludeID *uuid.UUID) bson.D {
	filter := bson.D{{Key: "dateTo", Value: bson.D{{Key: "$gte", Value: q.From()}}}}
	if to, ok := q.To(); ok {
		filter = append(filter, bson.E{Key: "dateFrom", Value: bson.D{{Key: "$lte", Value: to}}})
	}
	if excludeID != nil {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID.String()}}})
	}
	return filter
}

func (s *BookingStore) findOverlapping(ctx context.Context, filter bson.D) ([]*booking.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateFrom", Value: 1}})
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer cur.Close(ctx)

	var docs []bookingDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err)
	}

	result := make([]*booking.Booking, 0, len(docs))
	for _, d := range docs {
		b, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err)
		}
		result = append(result, b)
	}
	return result, nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var doc bookingDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}

func (s *BookingStore) Insert(ctx context.Context, b *booking.Booking) error {
	if _, err := s.coll.InsertOne(ctx, toBookingDocument(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (s *BookingStore) Replace(ctx context.Context, b *booking.Booking) error {
	doc := toBookingDocument(b)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "email", Value: doc.Email},
		{Key: "fullName", Value: doc.FullName},
		{Key: "dateFrom", Value: doc.DateFrom},
		{Key: "dateTo", Value: doc.DateTo},
		{Key: "updatedAt", Value: doc.UpdatedAt},
	}}}

	res, err := s.coll.UpdateByID(ctx, doc.ID, update)
	if err != nil {
		return infra.WrapRepoErr("failed to replace booking", err)
	}
	if res.MatchedCount == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (s *BookingStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if res.DeletedCount == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}
