package components

import (
	"campsite-reservation/internal/infra/mongostore"
	"campsite-reservation/internal/infra/outbox"
	"campsite-reservation/internal/infra/repository"
	"campsite-reservation/internal/infra/uow"
	"campsite-reservation/internal/usecase/queries"
	"campsite-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewOutboxSource,
			fx.As(new(outbox.Source)),
		),
	),
)

var MongoPersistenceModule = fx.Module("persistence/mongo",
	fx.Provide(
		fx.Annotate(
			mongostore.NewMongoUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			mongostore.NewBookingStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			mongostore.NewOutboxStore,
			fx.As(new(outbox.Source)),
		),
	),
)

// Reads outside a unit of work go straight to the pool.
func NewBookingReadStore(pool *pgxpool.Pool) *repository.BookingRepository {
	return repository.NewBookingRepository(pool)
}
