package booking

// MaybeRange holds a DateRange or nothing. The zero value is empty.
type MaybeRange struct {
	value DateRange
	ok    bool
}

func Some(r DateRange) MaybeRange {
	return MaybeRange{value: r, ok: true}
}

func None() MaybeRange {
	return MaybeRange{}
}

func (m MaybeRange) Get() (DateRange, bool) {
	return m.value, m.ok
}

func (m MaybeRange) IsPresent() bool {
	return m.ok
}

// Remainder is what survives of a range after subtracting another one:
// the piece before the subtracted range and the piece after it.
type Remainder struct {
	Left  MaybeRange
	Right MaybeRange
}
