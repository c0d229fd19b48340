package shared

import (
	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// TranslateRepoErr maps store failure kinds onto domain errors; other errors pass through.
func TranslateRepoErr(err error, id uuid.UUID) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Wrapf(booking.ErrBookingNotFound, "booking id '%s' not found", id)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Wrapf(booking.ErrNoAvailability, "booking id '%s' overlaps an existing booking", id)
	default:
		return err
	}
}
