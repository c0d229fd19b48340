package response

import (
	"time"

	"campsite-reservation/internal/domain/booking"

	"github.com/google/uuid"
)

type DateRangeResponse struct {
	From string `json:"from" example:"2026-06-05"`
	To   string `json:"to,omitempty" example:"2026-06-07"`
}

type ReservationResponse struct {
	ID        uuid.UUID         `json:"id"`
	Email     string            `json:"email"`
	FullName  string            `json:"fullName"`
	DateRange DateRangeResponse `json:"dateRange"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ReservationCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type AvailabilityResponse struct {
	Queried DateRangeResponse   `json:"queried"`
	Free    []DateRangeResponse `json:"free"`
}

// FromDateRange leaves To empty for an open range.
func FromDateRange(r booking.DateRange) DateRangeResponse {
	resp := DateRangeResponse{From: booking.FormatDate(r.From())}
	if to, ok := r.To(); ok {
		resp.To = booking.FormatDate(to)
	}
	return resp
}

func FromBooking(b *booking.Booking) *ReservationResponse {
	return &ReservationResponse{
		ID:        b.ID(),
		Email:     b.Email(),
		FullName:  b.FullName(),
		DateRange: FromDateRange(b.DateRange()),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func FromAvailability(a *booking.Availability) *AvailabilityResponse {
	free := a.FreeRanges()
	resp := &AvailabilityResponse{
		Queried: FromDateRange(a.QueriedRange()),
		Free:    make([]DateRangeResponse, len(free)),
	}
	for i, r := range free {
		resp.Free[i] = FromDateRange(r)
	}
	return resp
}
