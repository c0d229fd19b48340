package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"campsite-reservation/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const MaxFullNameLength = 100

var validate = validator.New()

type Booking struct {
	id        uuid.UUID
	email     string
	fullName  string
	dateRange DateRange
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(email, fullName string, r DateRange, now time.Time) (*Booking, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	fullName, err = normalizeFullName(fullName)
	if err != nil {
		return nil, err
	}
	if r.IsOpen() {
		return nil, ErrOpenRangeNotAllowed
	}

	return &Booking{
		id:        uuid.New(),
		email:     email,
		fullName:  fullName,
		dateRange: r,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a persisted booking without validation.
func ReconstructBooking(id uuid.UUID, email, fullName string, r DateRange, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		email:     email,
		fullName:  fullName,
		dateRange: r,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// WithDateRange returns a replacement booking with the same identity and a new range.
func (b *Booking) WithDateRange(r DateRange, now time.Time) (*Booking, error) {
	if r.IsOpen() {
		return nil, ErrOpenRangeNotAllowed
	}
	next := *b
	next.dateRange = r
	next.updatedAt = now
	return &next, nil
}

func (b *Booking) ID() uuid.UUID {
	return b.id
}

func (b *Booking) Email() string {
	return b.email
}

func (b *Booking) FullName() string {
	return b.fullName
}

func (b *Booking) DateRange() DateRange {
	return b.dateRange
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return "", errs.Wrapf(ErrInvalidEmail, "%q", email)
	}
	return email, nil
}

func normalizeFullName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.Wrap(ErrInvalidFullName, "full name is required")
	}
	if utf8.RuneCountInString(name) > MaxFullNameLength {
		return "", errs.Wrapf(ErrInvalidFullName, "longer than %d characters", MaxFullNameLength)
	}
	return name, nil
}
