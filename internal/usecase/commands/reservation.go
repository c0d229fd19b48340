package commands

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/pkg/tracing"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("campsite-reservation/usecase/commands")

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

type MakeReservationInput struct {
	Email     string
	FullName  string
	DateRange booking.DateRange
}

type MakeReservationResult struct {
	BookingID uuid.UUID
}

type ReservationCommands interface {
	MakeReservation(ctx context.Context, in MakeReservationInput) (*MakeReservationResult, error)
	ModifyReservation(ctx context.Context, id uuid.UUID, r booking.DateRange) (*booking.Booking, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
}

func NewReservationCommands(uow shared.UnitOfWork, services *booking.Services) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, services: services}
}

func (uc *reservationCommandsImpl) MakeReservation(ctx context.Context, in MakeReservationInput) (_ *MakeReservationResult, err error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.MakeReservation",
		trace.WithAttributes(attribute.String("booking.range", in.DateRange.String())))
	defer func() { tracing.End(span, err) }()

	if err := uc.services.Policy.CheckPreconditions(in.DateRange, uc.services.Today()); err != nil {
		return nil, err
	}
	now := uc.services.Clock.Now()
	created, err := booking.NewBooking(in.Email, in.FullName, in.DateRange, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		availability, err := shared.CalculateAvailability(ctx, tx.Bookings(), in.DateRange)
		if err != nil {
			return err
		}
		if !booking.IsBookingAllowed(in.DateRange, availability) {
			return errs.Wrapf(booking.ErrNoAvailability, "%s", in.DateRange)
		}

		if err := tx.Bookings().Insert(ctx, created); err != nil {
			return shared.TranslateRepoErr(err, created.ID())
		}
		return appendEvent(ctx, tx, shared.EventBookingCreated, created, now)
	})
	if err != nil {
		return nil, err
	}
	return &MakeReservationResult{BookingID: created.ID()}, nil
}

// ModifyReservation replaces the date range of an existing booking. The booking
// itself is excluded from the availability check.
func (uc *reservationCommandsImpl) ModifyReservation(ctx context.Context, id uuid.UUID, r booking.DateRange) (_ *booking.Booking, err error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.ModifyReservation", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
		attribute.String("booking.range", r.String()),
	))
	defer func() { tracing.End(span, err) }()

	var updated *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, id)
		}
		if err := uc.services.Policy.CheckPreconditions(r, uc.services.Today()); err != nil {
			return err
		}

		availability, err := shared.CalculateAvailabilityExcluding(ctx, tx.Bookings(), r, id)
		if err != nil {
			return err
		}
		if !booking.IsBookingAllowed(r, availability) {
			return errs.Wrapf(booking.ErrNoAvailability, "%s", r)
		}

		now := uc.services.Clock.Now()
		next, err := existing.WithDateRange(r, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Replace(ctx, next); err != nil {
			return shared.TranslateRepoErr(err, id)
		}
		updated = next
		return appendEvent(ctx, tx, shared.EventBookingModified, next, now)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *reservationCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.CancelReservation",
		trace.WithAttributes(attribute.String("booking.id", id.String())))
	defer func() { tracing.End(span, err) }()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, id)
		}
		if err := tx.Bookings().DeleteByID(ctx, id); err != nil {
			return shared.TranslateRepoErr(err, id)
		}
		return appendEvent(ctx, tx, shared.EventBookingCancelled, existing, uc.services.Clock.Now())
	})
}

func appendEvent(ctx context.Context, tx shared.Tx, eventType shared.EventType, b *booking.Booking, now time.Time) error {
	event, err := shared.NewBookingEvent(eventType, b, now)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return tx.Outbox().Append(ctx, event)
}
