package queries

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

// AvailabilityQuery bounds are optional: from defaults to today and a missing
// to is replaced by the default search window.
type AvailabilityQuery struct {
	From *time.Time
	To   *time.Time
}

type BookingReadStore interface {
	shared.BookingReader
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type ReservationQueries interface {
	FindAvailability(ctx context.Context, q AvailabilityQuery) (*booking.Availability, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type reservationQueriesImpl struct {
	store    BookingReadStore
	services *booking.Services
}

func NewReservationQueries(store BookingReadStore, services *booking.Services) ReservationQueries {
	return &reservationQueriesImpl{store: store, services: services}
}

func (q *reservationQueriesImpl) FindAvailability(ctx context.Context, query AvailabilityQuery) (*booking.Availability, error) {
	r, err := booking.NewQueryRange(query.From, query.To, q.services.Today())
	if err != nil {
		return nil, err
	}
	return shared.CalculateAvailability(ctx, q.store, q.services.Policy.QueryWindow(r))
}

func (q *reservationQueriesImpl) GetReservation(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, id)
	}
	return b, nil
}
