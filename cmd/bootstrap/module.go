package bootstrap

import (
	"strings"

	"campsite-reservation/cmd/bootstrap/components"
	"campsite-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		TracingModule,
		persistenceModule(cfg.Store.Driver),
		components.UseCaseModule,
		components.HandlerModule,
		components.OutboxModule,
	)
}

func persistenceModule(driver string) fx.Option {
	if strings.EqualFold(driver, config.StoreDriverMongo) {
		return fx.Options(MongoModule, LockModule, components.MongoPersistenceModule)
	}
	return fx.Options(DBModule, components.PostgresPersistenceModule)
}
