package repository

import (
	"context"
	"errors"
	"log/slog"

	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/db"
	"campsite-reservation/internal/pkg/pgconv"
	"campsite-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	appendOutboxSQL = `INSERT INTO booking_outbox (id, booking_id, event_type, payload, occurred_at)
VALUES ($1, $2, $3, $4, $5)`

	fetchUnpublishedSQL = `SELECT id, booking_id, event_type, payload, occurred_at
FROM booking_outbox
WHERE published_at IS NULL
ORDER BY occurred_at ASC
LIMIT $1
FOR UPDATE SKIP LOCKED`

	markPublishedSQL = `UPDATE booking_outbox SET published_at = now() WHERE id = ANY($1::uuid[])`
)

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Append(ctx context.Context, event shared.BookingEvent) error {
	_, err := r.db.Exec(ctx, appendOutboxSQL,
		pgconv.UUIDToPgtype(event.ID),
		pgconv.UUIDToPgtype(event.BookingID),
		string(event.Type),
		event.Payload,
		pgconv.TimeToPgtype(event.OccurredAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}

// OutboxSource hands unpublished events to the relay. Rows stay locked until
// publish returns, so several relays never send the same event.
type OutboxSource struct {
	pool *pgxpool.Pool
}

func NewOutboxSource(pool *pgxpool.Pool) *OutboxSource {
	return &OutboxSource{pool: pool}
}

func (s *OutboxSource) Drain(ctx context.Context, limit int, publish func(ctx context.Context, events []shared.BookingEvent) error) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin outbox transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox rollback failed", "error", rbErr.Error())
		}
	}()

	events, err := fetchUnpublished(ctx, tx, limit)
	if err != nil || len(events) == 0 {
		return 0, err
	}

	if err := publish(ctx, events); err != nil {
		return 0, err
	}

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID.String()
	}
	if _, err := tx.Exec(ctx, markPublishedSQL, ids); err != nil {
		return 0, infra.WrapRepoErr("failed to mark booking events published", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit outbox transaction", err)
	}
	return len(events), nil
}

func fetchUnpublished(ctx context.Context, tx pgx.Tx, limit int) ([]shared.BookingEvent, error) {
	rows, err := tx.Query(ctx, fetchUnpublishedSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch booking events", err)
	}
	defer rows.Close()

	var events []shared.BookingEvent
	for rows.Next() {
		var (
			id, bookingID pgtype.UUID
			eventType     string
			payload       []byte
			occurredAt    pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &bookingID, &eventType, &payload, &occurredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking event", err)
		}
		events = append(events, shared.BookingEvent{
			ID:         pgconv.UUIDFromPgtype(id),
			BookingID:  pgconv.UUIDFromPgtype(bookingID),
			Type:       shared.EventType(eventType),
			Payload:    payload,
			OccurredAt: pgconv.TimeFromPgtype(occurredAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking events", err)
	}
	return events, nil
}
