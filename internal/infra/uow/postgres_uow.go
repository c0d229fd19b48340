package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/db"
	"campsite-reservation/internal/infra/repository"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries        = 3
	retryBaseInterval = 100 * time.Millisecond

	// CampsiteLockKey identifies the single bookable resource for pg_advisory_xact_lock.
	CampsiteLockKey int64 = 0x63616d70 // "camp"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errAcquireLock        = errs.New("failed to acquire booking lock")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

// Within takes a transaction-scoped advisory lock first, so concurrent writers
// run their availability check and write one at a time. Serialization failures
// and deadlocks are retried with jittered exponential backoff.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempts := 0
	op := func() error {
		attempts++
		err := u.attempt(ctx, fn)
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.WarnContext(ctx, "retrying booking transaction",
			"attempt", attempts,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, newRetryPolicy(ctx), notify)
	if err != nil && isRetryableError(err) {
		slog.ErrorContext(ctx, "booking transaction failed after max retries",
			"attempts", attempts,
			"error", err.Error())
	}
	return markExhausted(err)
}

// markExhausted tags a retryable error that survived every retry.
func markExhausted(err error) error {
	if err == nil || !isRetryableError(err) {
		return err
	}
	return errs.Mark(err, errMaxRetriesExceeded)
}

func newRetryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryBaseInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0.2
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx)
}

// attempt runs fn in one transaction. The deferred rollback is a no-op after commit.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if _, err = pgxTx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", CampsiteLockKey); err != nil {
		return errs.Mark(infra.WrapRepoErr("failed to acquire booking lock", err), errAcquireLock)
	}
	if err = fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookingRepo shared.BookingRepository
	outboxRepo  shared.OutboxRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.dbtx)
	}
	return t.outboxRepo
}
