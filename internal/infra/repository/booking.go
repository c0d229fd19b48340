package repository

import (
	"context"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/db"
	"campsite-reservation/internal/infra/repository/converter"
	"campsite-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, email, full_name, date_from, date_to, created_at, updated_at`

const (
	findBookingByIDSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	// Ranges are half-open; "<=" and ">=" also return bookings that merely border the query.
	findOverlappingSQL = `SELECT ` + bookingColumns + ` FROM bookings
WHERE date_to >= $1 AND ($2::date IS NULL OR date_from <= $2)
  AND ($3::uuid IS NULL OR id <> $3)
ORDER BY date_from ASC`

	insertBookingSQL = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	replaceBookingSQL = `UPDATE bookings
SET email = $2, full_name = $3, date_from = $4, date_to = $5, updated_at = $6
WHERE id = $1`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, q booking.DateRange) ([]*booking.Booking, error) {
	return r.findOverlapping(ctx, q, nil)
}

func (r *BookingRepository) FindOverlappingExcluding(ctx context.Context, q booking.DateRange, excludeID uuid.UUID) ([]*booking.Booking, error) {
	return r.findOverlapping(ctx, q, &excludeID)
}

func (r *BookingRepository) findOverlapping(ctx context.Context, q booking.DateRange, excludeID *uuid.UUID) ([]*booking.Booking, error) {
	args := []any{pgconv.DateToPgtype(q.From()), nil, nil}
	if to, ok := q.To(); ok {
		args[1] = pgconv.DateToPgtype(to)
	}
	if excludeID != nil {
		args[2] = pgconv.UUIDToPgtype(*excludeID)
	}

	rows, err := r.db.Query(ctx, findOverlappingSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		var row converter.BookingRow
		if err := rows.Scan(row.ScanDest()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var row converter.BookingRow
	err := r.db.QueryRow(ctx, findBookingByIDSQL, pgconv.UUIDToPgtype(id)).Scan(row.ScanDest()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	if _, err := r.db.Exec(ctx, insertBookingSQL, rowArgs(b)...); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) Replace(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	tag, err := r.db.Exec(ctx, replaceBookingSQL, row.ID, row.Email, row.FullName, row.DateFrom, row.DateTo, row.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to replace booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func rowArgs(b *booking.Booking) []any {
	row := converter.BookingToRow(b)
	return []any{row.ID, row.Email, row.FullName, row.DateFrom, row.DateTo, row.CreatedAt, row.UpdatedAt}
}
