package shared

import (
	"context"

	"campsite-reservation/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within runs fn atomically while holding the campsite booking lock,
	// so availability read inside fn cannot change before fn returns.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Outbox() OutboxRepository
}

// BookingReader returns every booking whose range intersects or borders the
// queried range, ordered by start date.
type BookingReader interface {
	FindOverlapping(ctx context.Context, r booking.DateRange) ([]*booking.Booking, error)
	FindOverlappingExcluding(ctx context.Context, r booking.DateRange, excludeID uuid.UUID) ([]*booking.Booking, error)
}

type BookingRepository interface {
	BookingReader
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Insert(ctx context.Context, b *booking.Booking) error
	Replace(ctx context.Context, b *booking.Booking) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type OutboxRepository interface {
	Append(ctx context.Context, event BookingEvent) error
}
