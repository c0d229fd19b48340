package converter

import (
	"fmt"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRow mirrors the bookings table.
type BookingRow struct {
	ID        pgtype.UUID
	Email     string
	FullName  string
	DateFrom  pgtype.Date
	DateTo    pgtype.Date
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// ScanDest lists the fields in bookings column order.
func (r *BookingRow) ScanDest() []any {
	return []any{&r.ID, &r.Email, &r.FullName, &r.DateFrom, &r.DateTo, &r.CreatedAt, &r.UpdatedAt}
}

func BookingToRow(b *booking.Booking) BookingRow {
	r := b.DateRange()
	to, _ := r.To()
	return BookingRow{
		ID:        pgconv.UUIDToPgtype(b.ID()),
		Email:     b.Email(),
		FullName:  b.FullName(),
		DateFrom:  pgconv.DateToPgtype(r.From()),
		DateTo:    pgconv.DateToPgtype(to),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row BookingRow) (*booking.Booking, error) {
	from, err := pgconv.DateFromPgtype(row.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("date_from: %w", err)
	}
	to, err := pgconv.DateFromPgtype(row.DateTo)
	if err != nil {
		return nil, fmt.Errorf("date_to: %w", err)
	}
	r, err := booking.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		pgconv.UUIDFromPgtype(row.ID),
		row.Email,
		row.FullName,
		r,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
