package booking

import (
	"time"

	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/errs"
)

// NoMaxDaysAhead disables the upper lead-time bound. Any negative value does.
const NoMaxDaysAhead = -1

type Policy struct {
	MaxBookingDays      int
	MinDaysAhead        int
	MaxDaysAhead        int
	DefaultWindowMonths int
}

func DefaultPolicy() Policy {
	return Policy{
		MaxBookingDays:      3,
		MinDaysAhead:        1,
		MaxDaysAhead:        30,
		DefaultWindowMonths: 1,
	}
}

// CheckPreconditions applies the temporal rules a booking range must satisfy
// before availability is even considered.
func (p Policy) CheckPreconditions(r DateRange, today time.Time) error {
	if r.IsOpen() {
		return ErrOpenRangeNotAllowed
	}
	today = DateOf(today)
	if r.From().Before(today) {
		return errs.Wrapf(ErrPastDate, "%s starts before %s", r, FormatDate(today))
	}
	if days := r.TotalDays(); days > p.MaxBookingDays {
		return errs.Wrapf(ErrBookingTooLong, "%d days requested, at most %d allowed", days, p.MaxBookingDays)
	}

	ahead := DaysBetween(today, r.From())
	if ahead < p.MinDaysAhead {
		return errs.Wrapf(ErrLeadTimeOutOfBounds, "starts in %d days, minimum is %d", ahead, p.MinDaysAhead)
	}
	if p.MaxDaysAhead >= 0 && ahead > p.MaxDaysAhead {
		return errs.Wrapf(ErrLeadTimeOutOfBounds, "starts in %d days, maximum is %d", ahead, p.MaxDaysAhead)
	}
	return nil
}

// QueryWindow closes an open query range using the default window length.
func (p Policy) QueryWindow(r DateRange) DateRange {
	return r.WithEnd(p.DefaultWindowMonths)
}

// IsBookingAllowed reports whether r fits entirely inside one free range.
func IsBookingAllowed(r DateRange, a *Availability) bool {
	for _, free := range a.free {
		if r.IsInsideRange(free) {
			return true
		}
	}
	return false
}

type Services struct {
	Clock    clock.Clock
	Policy   Policy
	Location *time.Location
}

// Today is the current calendar day in the campsite's time zone.
func (s *Services) Today() time.Time {
	now := s.Clock.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return DateOf(now)
}
