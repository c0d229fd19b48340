package booking

import "campsite-reservation/internal/pkg/errs"

var (
	ErrInvalidDate         = errs.Validation("invalid date")
	ErrInvalidDateRange    = errs.Validation("end date must be after start date")
	ErrOpenRangeNotAllowed = errs.Validation("booking date range must have an end date")
	ErrPastDate            = errs.Validation("cannot book dates in the past")
	ErrBookingTooLong      = errs.Validation("booking exceeds maximum number of days")
	ErrLeadTimeOutOfBounds = errs.Validation("booking start is outside the allowed booking window")
	ErrNoAvailability      = errs.Validation("requested dates are not available")
	ErrInvalidEmail        = errs.Validation("invalid email")
	ErrInvalidFullName     = errs.Validation("invalid full name")

	ErrBookingNotFound = errs.NotFound("booking not found")
)

// Availability builder violations. These indicate a bug in the caller, not bad input.
var (
	ErrRangeOutsideQuery    = errs.New("free range lies outside the queried range")
	ErrAppendAfterOpenRange = errs.New("cannot append after an open free range")
	ErrRangeOutOfOrder      = errs.New("free ranges must be disjoint and ascending")
)
