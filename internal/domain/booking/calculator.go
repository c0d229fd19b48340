package booking

import "slices"

// CalculateAvailability subtracts every booked range from query, in ascending
// order of start date, collecting the gaps left between them.
func CalculateAvailability(query DateRange, booked []DateRange) (*Availability, error) {
	sorted := slices.Clone(booked)
	slices.SortFunc(sorted, DateRange.Compare)

	result := NewAvailability(query)
	remaining := Some(query)
	for _, b := range sorted {
		current, ok := remaining.Get()
		if !ok {
			break
		}
		rest := current.Minus(b)
		if left, ok := rest.Left.Get(); ok {
			if err := result.Add(left); err != nil {
				return nil, err
			}
		}
		remaining = rest.Right
	}

	if last, ok := remaining.Get(); ok {
		if err := result.Add(last); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func RangesOf(bookings []*Booking) []DateRange {
	ranges := make([]DateRange, len(bookings))
	for i, b := range bookings {
		ranges[i] = b.DateRange()
	}
	return ranges
}
