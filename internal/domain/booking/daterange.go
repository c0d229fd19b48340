package booking

import (
	"time"

	"campsite-reservation/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// DateOf returns the calendar day of t as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "%q is not in %s format", s, DateLayout)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween counts calendar days from a to b. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)) / (24 * time.Hour))
}

// DateRange is a half-open interval of calendar days [from, to).
// An open range has no end and extends forward indefinitely.
type DateRange struct {
	from time.Time
	to   time.Time
	open bool
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	from, to = DateOf(from), DateOf(to)
	if !to.After(from) {
		return DateRange{}, errs.Wrapf(ErrInvalidDateRange, "from %s to %s", FormatDate(from), FormatDate(to))
	}
	return DateRange{from: from, to: to}, nil
}

func NewOpenDateRange(from time.Time) DateRange {
	return DateRange{from: DateOf(from), open: true}
}

// NewQueryRange builds a range from optional bounds. A missing from means today,
// a missing to yields an open range.
func NewQueryRange(from, to *time.Time, today time.Time) (DateRange, error) {
	start := today
	if from != nil {
		start = *from
	}
	if to == nil {
		return NewOpenDateRange(start), nil
	}
	return NewDateRange(start, *to)
}

func (r DateRange) From() time.Time {
	return r.from
}

// To reports the end date; ok is false for open ranges.
func (r DateRange) To() (to time.Time, ok bool) {
	return r.to, !r.open
}

func (r DateRange) IsOpen() bool {
	return r.open
}

// TotalDays is the number of nights covered. Open ranges report 0.
func (r DateRange) TotalDays() int {
	if r.open {
		return 0
	}
	return DaysBetween(r.from, r.to)
}

// WithEnd closes an open range at from + months. Closed ranges are returned as is.
func (r DateRange) WithEnd(months int) DateRange {
	if !r.open {
		return r
	}
	return DateRange{from: r.from, to: r.from.AddDate(0, months, 0)}
}

func (r DateRange) Equal(other DateRange) bool {
	if r.open != other.open || !r.from.Equal(other.from) {
		return false
	}
	return r.open || r.to.Equal(other.to)
}

// Compare orders by start date, then by end with open ranges last.
func (r DateRange) Compare(other DateRange) int {
	if c := r.from.Compare(other.from); c != 0 {
		return c
	}
	return compareEnds(r, other)
}

// IsInsideRange reports whether r lies within other, bounds inclusive.
func (r DateRange) IsInsideRange(other DateRange) bool {
	if r.from.Before(other.from) {
		return false
	}
	return compareEnds(r, other) <= 0
}

// Minus removes the part of r covered by other. Ranges that only touch
// at a boundary do not overlap, so r survives whole.
func (r DateRange) Minus(other DateRange) Remainder {
	if r.endsBefore(other.from) || other.endsBefore(r.from) {
		return Remainder{Right: Some(r)}
	}

	var rest Remainder
	if r.from.Before(other.from) {
		rest.Left = Some(DateRange{from: r.from, to: other.from})
	}
	if compareEnds(r, other) > 0 {
		rest.Right = Some(DateRange{from: other.to, to: r.to, open: r.open})
	}
	return rest
}

func (r DateRange) String() string {
	if r.open {
		return "[" + FormatDate(r.from) + ", open)"
	}
	return "[" + FormatDate(r.from) + ", " + FormatDate(r.to) + ")"
}

func (r DateRange) endsBefore(d time.Time) bool {
	return !r.open && r.to.Before(d)
}

// open ends compare greater than every finite end
func compareEnds(a, b DateRange) int {
	switch {
	case a.open && b.open:
		return 0
	case a.open:
		return 1
	case b.open:
		return -1
	}
	return a.to.Compare(b.to)
}
