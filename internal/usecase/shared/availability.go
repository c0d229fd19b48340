package shared

import (
	"context"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

func CalculateAvailability(ctx context.Context, reader BookingReader, r booking.DateRange) (*booking.Availability, error) {
	booked, err := reader.FindOverlapping(ctx, r)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load overlapping bookings")
	}
	return booking.CalculateAvailability(r, booking.RangesOf(booked))
}

// CalculateAvailabilityExcluding ignores one booking so it does not block its own modification.
func CalculateAvailabilityExcluding(ctx context.Context, reader BookingReader, r booking.DateRange, excludeID uuid.UUID) (*booking.Availability, error) {
	booked, err := reader.FindOverlappingExcluding(ctx, r, excludeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load overlapping bookings")
	}
	return booking.CalculateAvailability(r, booking.RangesOf(booked))
}
