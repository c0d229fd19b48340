package errs

import "errors"

// Error classes. Boundaries branch on the class, never on individual sentinels.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

type classified struct {
	error
	class error
}

func (c *classified) Is(target error) bool {
	return target == c.class
}

func (c *classified) Unwrap() error {
	return c.error
}

// Validation creates a sentinel that satisfies errors.Is(err, ErrValidation).
func Validation(msg string) error {
	return &classified{error: New(msg), class: ErrValidation}
}

// NotFound creates a sentinel that satisfies errors.Is(err, ErrNotFound).
func NotFound(msg string) error {
	return &classified{error: New(msg), class: ErrNotFound}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
