//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/commands"
	"campsite-reservation/internal/usecase/shared"
	"campsite-reservation/tests/common/builder"
	sharedmock "campsite-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
	outbox   *sharedmock.MockOutboxRepository
	cmds     commands.ReservationCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		outbox:   sharedmock.NewMockOutboxRepository(ctrl),
	}
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()

	services := &booking.Services{Clock: clock.NewFixed(now), Policy: booking.DefaultPolicy()}
	f.cmds = commands.NewReservationCommands(f.uow, services)
	return f
}

// expectWithin runs the unit of work body against the mocked transaction.
func (f *fixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).Times(1)
}

func bookingAt(fromDays, toDays int) *booking.Booking {
	return builder.NewBookingBuilder().WithDaysFrom(now, fromDays, toDays).BuildReconstructed()
}

// =============================================================================
// MakeReservation
// =============================================================================

func TestMakeReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: inserts the booking and records a created event", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().WithDaysFrom(now, 5, 7).BuildMakeInput()

		f.expectWithin()
		f.bookings.EXPECT().FindOverlapping(gomock.Any(), in.DateRange).
			Return([]*booking.Booking{bookingAt(2, 4), bookingAt(8, 10)}, nil)

		var inserted *booking.Booking
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				inserted = b
				return nil
			})
		f.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e shared.BookingEvent) error {
				assert.Equal(t, shared.EventBookingCreated, e.Type)
				assert.Equal(t, inserted.ID(), e.BookingID)
				assert.Equal(t, now, e.OccurredAt)
				return nil
			})

		result, err := f.cmds.MakeReservation(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, inserted.ID(), result.BookingID)
		assert.True(t, in.DateRange.Equal(inserted.DateRange()))
		assert.Equal(t, in.Email, inserted.Email())
	})

	t.Run("success: a booking may start on the day another ends", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().WithDaysFrom(now, 5, 7).BuildMakeInput()

		f.expectWithin()
		f.bookings.EXPECT().FindOverlapping(gomock.Any(), in.DateRange).
			Return([]*booking.Booking{bookingAt(3, 5), bookingAt(7, 9)}, nil)
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.cmds.MakeReservation(ctx, in)
		assert.NoError(t, err)
	})

	t.Run("error: precondition failures never open a unit of work", func(t *testing.T) {
		testCases := []struct {
			name     string
			fromDays int
			toDays   int
			errIs    error
		}{
			{name: "starts today", fromDays: 0, toDays: 2, errIs: booking.ErrLeadTimeOutOfBounds},
			{name: "in the past", fromDays: -2, toDays: 1, errIs: booking.ErrPastDate},
			{name: "four nights", fromDays: 5, toDays: 9, errIs: booking.ErrBookingTooLong},
			{name: "beyond thirty days", fromDays: 31, toDays: 33, errIs: booking.ErrLeadTimeOutOfBounds},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				in := builder.NewBookingBuilder().WithDaysFrom(now, tc.fromDays, tc.toDays).BuildMakeInput()

				_, err := f.cmds.MakeReservation(ctx, in)

				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.IsValidation(err))
			})
		}
	})

	t.Run("error: invalid contact data", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().WithDaysFrom(now, 5, 7).WithEmail("nobody").BuildMakeInput()

		_, err := f.cmds.MakeReservation(ctx, in)
		assert.ErrorIs(t, err, booking.ErrInvalidEmail)
	})

	t.Run("error: requested dates overlap an existing booking", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().WithDaysFrom(now, 5, 7).BuildMakeInput()

		f.expectWithin()
		f.bookings.EXPECT().FindOverlapping(gomock.Any(), in.DateRange).
			Return([]*booking.Booking{bookingAt(6, 8)}, nil)

		_, err := f.cmds.MakeReservation(ctx, in)

		require.ErrorIs(t, err, booking.ErrNoAvailability)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("error: exclusion constraint violation is reported as no availability", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().WithDaysFrom(now, 5, 7).BuildMakeInput()

		f.expectWithin()
		f.bookings.EXPECT().FindOverlapping(gomock.Any(), in.DateRange).Return(nil, nil)
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to insert booking", errors.New("exclusion"), infra.KindConflict))

		_, err := f.cmds.MakeReservation(ctx, in)
		assert.ErrorIs(t, err, booking.ErrNoAvailability)
	})

	t.Run("error: store failure while reading availability", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().WithDaysFrom(now, 5, 7).BuildMakeInput()
		storeErr := errors.New("connection refused")

		f.expectWithin()
		f.bookings.EXPECT().FindOverlapping(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		_, err := f.cmds.MakeReservation(ctx, in)

		require.ErrorIs(t, err, storeErr)
		assert.False(t, errs.IsValidation(err))
	})
}

// =============================================================================
// ModifyReservation
// =============================================================================

func TestModifyReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: the booking does not collide with itself", func(t *testing.T) {
		f := newFixture(t)
		existing := bookingAt(5, 7)
		r, err := booking.NewDateRange(now.AddDate(0, 0, 6), now.AddDate(0, 0, 8))
		require.NoError(t, err)

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		f.bookings.EXPECT().FindOverlappingExcluding(gomock.Any(), r, existing.ID()).Return(nil, nil)
		f.bookings.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e shared.BookingEvent) error {
				assert.Equal(t, shared.EventBookingModified, e.Type)
				assert.Equal(t, existing.ID(), e.BookingID)
				return nil
			})

		updated, err := f.cmds.ModifyReservation(ctx, existing.ID(), r)

		require.NoError(t, err)
		assert.Equal(t, existing.ID(), updated.ID())
		assert.True(t, r.Equal(updated.DateRange()))
		assert.Equal(t, now, updated.UpdatedAt())
		assert.Equal(t, existing.CreatedAt(), updated.CreatedAt())
	})

	t.Run("error: new dates collide with another booking", func(t *testing.T) {
		f := newFixture(t)
		existing := bookingAt(5, 7)
		r, err := booking.NewDateRange(now.AddDate(0, 0, 9), now.AddDate(0, 0, 11))
		require.NoError(t, err)

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		f.bookings.EXPECT().FindOverlappingExcluding(gomock.Any(), r, existing.ID()).
			Return([]*booking.Booking{bookingAt(10, 12)}, nil)

		_, err = f.cmds.ModifyReservation(ctx, existing.ID(), r)
		assert.ErrorIs(t, err, booking.ErrNoAvailability)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		r, err := booking.NewDateRange(now.AddDate(0, 0, 5), now.AddDate(0, 0, 7))
		require.NoError(t, err)

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.NotFound("booking not found"))

		_, err = f.cmds.ModifyReservation(ctx, id, r)

		require.ErrorIs(t, err, booking.ErrBookingNotFound)
		assert.True(t, errs.IsNotFound(err))
		assert.Contains(t, err.Error(), id.String())
	})

	t.Run("error: new dates break the booking rules", func(t *testing.T) {
		f := newFixture(t)
		existing := bookingAt(5, 7)
		r, err := booking.NewDateRange(now.AddDate(0, 0, 5), now.AddDate(0, 0, 10))
		require.NoError(t, err)

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)

		_, err = f.cmds.ModifyReservation(ctx, existing.ID(), r)
		assert.ErrorIs(t, err, booking.ErrBookingTooLong)
	})
}

// =============================================================================
// CancelReservation
// =============================================================================

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deletes and records a cancelled event", func(t *testing.T) {
		f := newFixture(t)
		existing := bookingAt(5, 7)

		f.expectWithin()
		gomock.InOrder(
			f.bookings.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil),
			f.bookings.EXPECT().DeleteByID(gomock.Any(), existing.ID()).Return(nil),
			f.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e shared.BookingEvent) error {
					assert.Equal(t, shared.EventBookingCancelled, e.Type)
					return nil
				}),
		)

		assert.NoError(t, f.cmds.CancelReservation(ctx, existing.ID()))
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.NotFound("booking not found"))

		err := f.cmds.CancelReservation(ctx, id)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("error: outbox failure aborts the unit of work", func(t *testing.T) {
		f := newFixture(t)
		existing := bookingAt(5, 7)
		outboxErr := errors.New("outbox unavailable")

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		f.bookings.EXPECT().DeleteByID(gomock.Any(), existing.ID()).Return(nil)
		f.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(outboxErr)

		assert.ErrorIs(t, f.cmds.CancelReservation(ctx, existing.ID()), outboxErr)
	})
}
