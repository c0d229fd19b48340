package shared

import (
	"encoding/json"
	"time"

	"campsite-reservation/internal/domain/booking"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingModified  EventType = "booking.modified"
	EventBookingCancelled EventType = "booking.cancelled"
)

// BookingEvent is recorded in the same unit of work as the change it describes
// and relayed to subscribers afterwards.
type BookingEvent struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	Type       EventType
	Payload    []byte
	OccurredAt time.Time
}

type bookingPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func NewBookingEvent(eventType EventType, b *booking.Booking, now time.Time) (BookingEvent, error) {
	to, _ := b.DateRange().To()
	payload, err := json.Marshal(bookingPayload{
		ID:       b.ID().String(),
		Email:    b.Email(),
		FullName: b.FullName(),
		From:     booking.FormatDate(b.DateRange().From()),
		To:       booking.FormatDate(to),
	})
	if err != nil {
		return BookingEvent{}, err
	}

	return BookingEvent{
		ID:         uuid.New(),
		BookingID:  b.ID(),
		Type:       eventType,
		Payload:    payload,
		OccurredAt: now,
	}, nil
}
