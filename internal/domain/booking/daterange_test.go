//go:build unit

package booking_test

import (
	"testing"
	"time"

	"campsite-reservation/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return base.AddDate(0, 0, n)
}

func closed(t *testing.T, from, to int) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(day(from), day(to))
	require.NoError(t, err)
	return r
}

func open(from int) booking.DateRange {
	return booking.NewOpenDateRange(day(from))
}

var rangeOpts = cmp.Options{
	cmp.Comparer(booking.DateRange.Equal),
	cmp.Comparer(func(a, b booking.MaybeRange) bool {
		av, aok := a.Get()
		bv, bok := b.Get()
		return aok == bok && (!aok || av.Equal(bv))
	}),
}

func TestNewDateRange(t *testing.T) {
	t.Run("normalizes to calendar days", func(t *testing.T) {
		r, err := booking.NewDateRange(day(1).Add(15*time.Hour), day(3).Add(time.Minute))
		require.NoError(t, err)

		assert.Equal(t, day(1), r.From())
		to, ok := r.To()
		assert.True(t, ok)
		assert.Equal(t, day(3), to)
		assert.Equal(t, 2, r.TotalDays())
		assert.False(t, r.IsOpen())
	})

	t.Run("end must be after start", func(t *testing.T) {
		_, err := booking.NewDateRange(day(2), day(2))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		_, err = booking.NewDateRange(day(3), day(2))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		_, err = booking.NewDateRange(day(2), day(2).Add(20*time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange, "same calendar day")
	})

	t.Run("open range", func(t *testing.T) {
		r := open(4)
		assert.True(t, r.IsOpen())
		_, ok := r.To()
		assert.False(t, ok)
		assert.Equal(t, 0, r.TotalDays())
		assert.Equal(t, "[2026-06-05, open)", r.String())
	})

	t.Run("query range defaults", func(t *testing.T) {
		from, to := day(5), day(8)

		r, err := booking.NewQueryRange(nil, nil, day(0))
		require.NoError(t, err)
		assert.True(t, r.Equal(open(0)), "missing from means today")

		r, err = booking.NewQueryRange(&from, nil, day(0))
		require.NoError(t, err)
		assert.True(t, r.Equal(open(5)))

		r, err = booking.NewQueryRange(nil, &to, day(0))
		require.NoError(t, err)
		assert.True(t, r.Equal(closed(t, 0, 8)))

		_, err = booking.NewQueryRange(&to, &from, day(0))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("parse date", func(t *testing.T) {
		d, err := booking.ParseDate("2026-06-03")
		require.NoError(t, err)
		assert.Equal(t, day(2), d)

		_, err = booking.ParseDate("03/06/2026")
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("with end closes open ranges only", func(t *testing.T) {
		assert.True(t, open(0).WithEnd(1).Equal(closed(t, 0, 30)))
		assert.True(t, closed(t, 0, 5).WithEnd(1).Equal(closed(t, 0, 5)))
	})
}

func TestDateRangeOrdering(t *testing.T) {
	assert.Negative(t, closed(t, 0, 5).Compare(closed(t, 1, 2)))
	assert.Positive(t, closed(t, 1, 2).Compare(closed(t, 0, 5)))
	assert.Negative(t, closed(t, 0, 5).Compare(open(0)), "open sorts after closed on equal start")
	assert.Positive(t, open(0).Compare(closed(t, 0, 5)))
	assert.Zero(t, open(3).Compare(open(3)))
	assert.Zero(t, closed(t, 0, 5).Compare(closed(t, 0, 5)))

	assert.True(t, closed(t, 0, 5).Equal(closed(t, 0, 5)))
	assert.False(t, closed(t, 0, 5).Equal(closed(t, 0, 6)))
	assert.False(t, closed(t, 0, 5).Equal(open(0)))
	assert.True(t, open(2).Equal(open(2)))
}

func TestIsInsideRange(t *testing.T) {
	cases := []struct {
		name   string
		inner  booking.DateRange
		outer  booking.DateRange
		expect bool
	}{
		{name: "equal bounds", inner: closed(t, 0, 10), outer: closed(t, 0, 10), expect: true},
		{name: "strictly inside", inner: closed(t, 2, 4), outer: closed(t, 0, 10), expect: true},
		{name: "starts before", inner: closed(t, -1, 4), outer: closed(t, 0, 10), expect: false},
		{name: "ends after", inner: closed(t, 2, 11), outer: closed(t, 0, 10), expect: false},
		{name: "inside open outer", inner: closed(t, 200, 300), outer: open(0), expect: true},
		{name: "before open outer", inner: closed(t, -2, 3), outer: open(0), expect: false},
		{name: "open inside open", inner: open(3), outer: open(0), expect: true},
		{name: "open inside closed", inner: open(3), outer: closed(t, 0, 10), expect: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.inner.IsInsideRange(tc.outer))
		})
	}
}

func TestMinus(t *testing.T) {
	a := closed(t, 0, 10)

	cases := []struct {
		name   string
		a      booking.DateRange
		b      booking.DateRange
		expect booking.Remainder
	}{
		{
			name:   "disjoint, a entirely after b",
			a:      a,
			b:      closed(t, -20, -10),
			expect: booking.Remainder{Right: booking.Some(a)},
		},
		{
			name:   "disjoint, a entirely before b",
			a:      a,
			b:      closed(t, 20, 30),
			expect: booking.Remainder{Right: booking.Some(a)},
		},
		{
			name:   "b strictly inside a",
			a:      a,
			b:      closed(t, 3, 6),
			expect: booking.Remainder{Left: booking.Some(closed(t, 0, 3)), Right: booking.Some(closed(t, 6, 10))},
		},
		{
			name:   "b overlaps the start of a",
			a:      a,
			b:      closed(t, -5, 5),
			expect: booking.Remainder{Right: booking.Some(closed(t, 5, 10))},
		},
		{
			name:   "b overlaps the end of a",
			a:      a,
			b:      closed(t, 5, 15),
			expect: booking.Remainder{Left: booking.Some(closed(t, 0, 5))},
		},
		{
			name:   "ranges coincide",
			a:      a,
			b:      closed(t, 0, 10),
			expect: booking.Remainder{},
		},
		{
			name:   "b covers a",
			a:      a,
			b:      closed(t, -5, 15),
			expect: booking.Remainder{},
		},
		{
			name:   "b touches the end of a",
			a:      a,
			b:      closed(t, 10, 20),
			expect: booking.Remainder{Left: booking.Some(a)},
		},
		{
			name:   "b touches the start of a",
			a:      a,
			b:      closed(t, -10, 0),
			expect: booking.Remainder{Right: booking.Some(a)},
		},
		{
			name:   "same start, b shorter",
			a:      a,
			b:      closed(t, 0, 4),
			expect: booking.Remainder{Right: booking.Some(closed(t, 4, 10))},
		},
		{
			name:   "same end, b shorter",
			a:      a,
			b:      closed(t, 6, 10),
			expect: booking.Remainder{Left: booking.Some(closed(t, 0, 6))},
		},
		{
			name:   "open b starting inside a",
			a:      a,
			b:      open(5),
			expect: booking.Remainder{Left: booking.Some(closed(t, 0, 5))},
		},
		{
			name:   "open b starting before a",
			a:      a,
			b:      open(-5),
			expect: booking.Remainder{},
		},
		{
			name:   "open b touching the end of a",
			a:      a,
			b:      open(10),
			expect: booking.Remainder{Left: booking.Some(a)},
		},
		{
			name:   "open a, b inside",
			a:      open(0),
			b:      closed(t, 5, 10),
			expect: booking.Remainder{Left: booking.Some(closed(t, 0, 5)), Right: booking.Some(open(10))},
		},
		{
			name:   "open a, b overlapping its start",
			a:      open(0),
			b:      closed(t, -5, 5),
			expect: booking.Remainder{Right: booking.Some(open(5))},
		},
		{
			name:   "open a, open b later",
			a:      open(0),
			b:      open(5),
			expect: booking.Remainder{Left: booking.Some(closed(t, 0, 5))},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := tc.a.Minus(tc.b)
			if diff := cmp.Diff(tc.expect, actual, rangeOpts); diff != "" {
				t.Errorf("Minus(%s, %s) mismatch (-want +got):\n%s", tc.a, tc.b, diff)
			}
		})
	}
}

func TestMinusReconstructsRange(t *testing.T) {
	const lo, hi = -3, 12

	containsDay := func(r booking.DateRange, d time.Time) bool {
		to, ok := r.To()
		return !d.Before(r.From()) && (!ok || d.Before(to))
	}
	inPiece := func(m booking.MaybeRange, d time.Time) bool {
		r, ok := m.Get()
		return ok && containsDay(r, d)
	}

	for af := lo; af < hi; af++ {
		for at := af + 1; at <= hi; at++ {
			a := closed(t, af, at)
			for bf := lo; bf < hi; bf++ {
				for bt := bf + 1; bt <= hi; bt++ {
					b := closed(t, bf, bt)
					rest := a.Minus(b)

					for _, piece := range []booking.MaybeRange{rest.Left, rest.Right} {
						if r, ok := piece.Get(); ok {
							require.True(t, r.IsInsideRange(a), "%s minus %s produced %s", a, b, r)
						}
					}

					for d := lo - 1; d <= hi+1; d++ {
						date := day(d)
						left, right := inPiece(rest.Left, date), inPiece(rest.Right, date)
						covered := containsDay(a, date) && containsDay(b, date)

						require.False(t, left && right, "%s minus %s: pieces overlap on %d", a, b, d)
						require.False(t, (left || right) && covered, "%s minus %s: day %d still booked", a, b, d)
						require.Equal(t, containsDay(a, date), left || right || covered,
							"%s minus %s: day %d not reconstructed", a, b, d)
					}
				}
			}
		}
	}
}
