package lock

import (
	"context"
	"time"

	"campsite-reservation/internal/pkg/errs"
)

// CampsiteKey is the lock guarding every booking write for the campsite.
const CampsiteKey = "campsite"

var ErrLockTimeout = errs.New("timed out waiting for lock")

// Locker grants exclusive access to a named key until release is called.
// Lease is how long the grant is guaranteed to hold; zero means until release.
// Holders must finish their work within it.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
	Lease() time.Duration
}
