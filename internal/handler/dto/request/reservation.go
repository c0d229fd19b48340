package request

import (
	"strings"
	"time"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/usecase/commands"
	"campsite-reservation/internal/usecase/queries"
)

type DateRangeRequest struct {
	From string `json:"from" binding:"required,datetime=2006-01-02" example:"2026-06-05"`
	To   string `json:"to" binding:"required,datetime=2006-01-02" example:"2026-06-07"`
}

func (r DateRangeRequest) ToDomain() (booking.DateRange, error) {
	from, err := booking.ParseDate(r.From)
	if err != nil {
		return booking.DateRange{}, err
	}
	to, err := booking.ParseDate(r.To)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.NewDateRange(from, to)
}

type CreateReservationRequest struct {
	Email     string           `json:"email" binding:"required,email" example:"jane@example.com"`
	FullName  string           `json:"fullName" binding:"required,max=100" example:"Jane Camper"`
	DateRange DateRangeRequest `json:"dateRange" binding:"required"`
}

func (r CreateReservationRequest) ToInput() (commands.MakeReservationInput, error) {
	dr, err := r.DateRange.ToDomain()
	if err != nil {
		return commands.MakeReservationInput{}, err
	}
	return commands.MakeReservationInput{
		Email:     strings.TrimSpace(r.Email),
		FullName:  strings.TrimSpace(r.FullName),
		DateRange: dr,
	}, nil
}

// AvailabilityRequest is bound from the query string; both bounds are optional.
type AvailabilityRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

func (r AvailabilityRequest) ToQuery() (queries.AvailabilityQuery, error) {
	var q queries.AvailabilityQuery
	var err error
	if q.From, err = optionalDate(r.From); err != nil {
		return queries.AvailabilityQuery{}, err
	}
	if q.To, err = optionalDate(r.To); err != nil {
		return queries.AvailabilityQuery{}, err
	}
	return q, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := booking.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
