package mongostore

import (
	"time"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	bookingsCollection = "bookings"
	outboxCollection   = "booking_outbox"
)

type bookingDocument struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	FullName  string    `bson:"fullName"`
	DateFrom  time.Time `bson:"dateFrom"`
	DateTo    time.Time `bson:"dateTo"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toBookingDocument(b *booking.Booking) bookingDocument {
	to, _ := b.DateRange().To()
	return bookingDocument{
		ID:        b.ID().String(),
		Email:     b.Email(),
		FullName:  b.FullName(),
		DateFrom:  b.DateRange().From(),
		DateTo:    to,
		CreatedAt: b.CreatedAt().UTC(),
		UpdatedAt: b.UpdatedAt().UTC(),
	}
}

func (d bookingDocument) toDomain() (*booking.Booking, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	r, err := booking.NewDateRange(d.DateFrom, d.DateTo)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(id, d.Email, d.FullName, r, d.CreatedAt, d.UpdatedAt), nil
}

type outboxDocument struct {
	ID          string     `bson:"_id"`
	BookingID   string     `bson:"bookingId"`
	EventType   string     `bson:"eventType"`
	Payload     []byte     `bson:"payload"`
	OccurredAt  time.Time  `bson:"occurredAt"`
	PublishedAt *time.Time `bson:"publishedAt"`
}

func toOutboxDocument(e shared.BookingEvent) outboxDocument {
	return outboxDocument{
		ID:         e.ID.String(),
		BookingID:  e.BookingID.String(),
		EventType:  string(e.Type),
		Payload:    e.Payload,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

func (d outboxDocument) toEvent() (shared.BookingEvent, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return shared.BookingEvent{}, err
	}
	bookingID, err := uuid.Parse(d.BookingID)
	if err != nil {
		return shared.BookingEvent{}, err
	}
	return shared.BookingEvent{
		ID:         id,
		BookingID:  bookingID,
		Type:       shared.EventType(d.EventType),
		Payload:    d.Payload,
		OccurredAt: d.OccurredAt,
	}, nil
}
