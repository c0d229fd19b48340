package infra

import (
	"context"
	"errors"
	"log/slog"

	"campsite-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	// KindConflict is a booking that overlaps another one at write time.
	KindConflict RepositoryErrorKind = "CONFLICT"
	KindTimeout  RepositoryErrorKind = "TIMEOUT"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeQueryCanceled      = "57014"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err == nil {
		return string(e.Kind) + ": " + e.msg
	}
	// err already carries msg as its wrap prefix
	return string(e.Kind) + ": " + e.err.Error()
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a driver error for either store. Without an explicit kind
// the kind is derived from the error itself.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	switch k {
	case KindDBFailure:
		slog.Error("repository error", "op", msg, "error", errString(err))
	case KindTimeout:
		slog.Warn("repository timeout", "op", msg, "error", errString(err))
	}

	return RepositoryError{Kind: k, msg: msg, err: errs.Wrap(err, msg)}
}

func NotFound(msg string) error {
	return RepositoryError{Kind: KindNotFound, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	return errors.As(err, &e) && e.Kind == kind
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return KindTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return KindDuplicateKey
		case pgErrCodeExclusionViolation:
			return KindConflict
		case pgErrCodeQueryCanceled:
			return KindTimeout
		}
		return KindDBFailure
	}

	if mongo.IsDuplicateKeyError(err) {
		return KindDuplicateKey
	}
	return KindDBFailure
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
