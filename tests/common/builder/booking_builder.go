//go:build unit || e2e

package builder

import (
	"time"

	"campsite-reservation/internal/domain/booking"
	reqdto "campsite-reservation/internal/handler/dto/request"
	"campsite-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	From      time.Time
	To        time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingBuilder starts from a two-night stay ten days after today.
func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	from := booking.DateOf(now).AddDate(0, 0, 10)
	return &BookingBuilder{
		ID:        uuid.New(),
		Email:     "camper@example.com",
		FullName:  "Jane Camper",
		From:      from,
		To:        from.AddDate(0, 0, 2),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithFullName(name string) *BookingBuilder {
	b.FullName = name
	return b
}

func (b *BookingBuilder) WithDates(from, to time.Time) *BookingBuilder {
	b.From = from
	b.To = to
	return b
}

// WithDaysFrom sets the range relative to today, in days.
func (b *BookingBuilder) WithDaysFrom(today time.Time, fromDays, toDays int) *BookingBuilder {
	today = booking.DateOf(today)
	return b.WithDates(today.AddDate(0, 0, fromDays), today.AddDate(0, 0, toDays))
}

// Build methods
func (b *BookingBuilder) BuildDateRange() (booking.DateRange, error) {
	return booking.NewDateRange(b.From, b.To)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	r, err := b.BuildDateRange()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.Email, b.FullName, r, b.CreatedAt)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	r, err := b.BuildDateRange()
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(b.ID, b.Email, b.FullName, r, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildMakeInput() commands.MakeReservationInput {
	r, err := b.BuildDateRange()
	if err != nil {
		panic(err)
	}
	return commands.MakeReservationInput{Email: b.Email, FullName: b.FullName, DateRange: r}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Email:     b.Email,
		FullName:  b.FullName,
		DateRange: b.BuildDateRangeDTO(),
	}
}

func (b *BookingBuilder) BuildDateRangeDTO() reqdto.DateRangeRequest {
	return reqdto.DateRangeRequest{
		From: booking.FormatDate(b.From),
		To:   booking.FormatDate(b.To),
	}
}
