//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"campsite-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestMark(t *testing.T) {
	t.Run("keeps the message and matches the mark", func(t *testing.T) {
		err := errs.Mark(errs.New("lock failed"), errBoom)
		assert.True(t, errs.Is(err, errBoom))
		assert.True(t, errs.Is(errs.Wrap(err, "create reservation"), errBoom))
		assert.Equal(t, "lock failed", err.Error())
	})

	t.Run("other errors do not match the mark", func(t *testing.T) {
		assert.False(t, errs.Is(errs.New("lock failed"), errBoom))
	})

	t.Run("nil error becomes the mark", func(t *testing.T) {
		assert.Same(t, errBoom, errs.Mark(nil, errBoom))
	})
}

func TestClassification(t *testing.T) {
	errTaken := errs.Validation("dates taken")
	errGone := errs.NotFound("reservation not found")

	wrapped := errs.Wrap(errTaken, "create reservation")
	assert.True(t, errs.IsValidation(wrapped))
	assert.False(t, errs.IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, errTaken))
	assert.Equal(t, "create reservation: dates taken", wrapped.Error())

	assert.True(t, errs.IsNotFound(errs.Wrapf(errGone, "id %s", "x")))
	assert.False(t, errs.IsValidation(errBoom))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.Wrap(errs.New("inner"), "outer"), 4)
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 4)
	assert.Equal(t, "outer: inner", lines[0])
	for _, l := range lines {
		assert.NotEmpty(t, l)
		assert.NotRegexp(t, `^(runtime|testing)\.`, l)
	}
}
