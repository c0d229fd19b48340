package components

import (
	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/config"
	"campsite-reservation/internal/usecase/commands"
	"campsite-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.System,
	NewPolicy,
	func(clock clock.Clock, policy booking.Policy, cfg config.Config) (*booking.Services, error) {
		loc, err := cfg.Reservation.Location()
		if err != nil {
			return nil, err
		}
		return &booking.Services{
			Clock:    clock,
			Policy:   policy,
			Location: loc,
		}, nil
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

func NewPolicy(cfg config.Config) booking.Policy {
	return booking.Policy{
		MaxBookingDays:      cfg.Reservation.MaxBookingDays,
		MinDaysAhead:        cfg.Reservation.MinDaysAhead,
		MaxDaysAhead:        cfg.Reservation.MaxDaysAhead,
		DefaultWindowMonths: cfg.Reservation.DefaultWindowMonths,
	}
}
