package booking

import (
	"slices"

	"campsite-reservation/internal/pkg/errs"
)

// Availability is the set of free ranges found inside a queried range.
// Free ranges are disjoint, ascending, and only the last one may be open.
type Availability struct {
	queried DateRange
	free    []DateRange
}

func NewAvailability(queried DateRange) *Availability {
	return &Availability{queried: queried}
}

// Add appends a free range, rejecting anything that would break the ordering invariants.
func (a *Availability) Add(r DateRange) error {
	if !r.IsInsideRange(a.queried) {
		return errs.Wrapf(ErrRangeOutsideQuery, "%s not inside %s", r, a.queried)
	}
	if n := len(a.free); n > 0 {
		last := a.free[n-1]
		if last.IsOpen() {
			return errs.Wrapf(ErrAppendAfterOpenRange, "%s after %s", r, last)
		}
		if r.from.Before(last.to) {
			return errs.Wrapf(ErrRangeOutOfOrder, "%s after %s", r, last)
		}
	}
	a.free = append(a.free, r)
	return nil
}

func (a *Availability) QueriedRange() DateRange {
	return a.queried
}

func (a *Availability) FreeRanges() []DateRange {
	return slices.Clone(a.free)
}

func (a *Availability) IsEmpty() bool {
	return len(a.free) == 0
}
