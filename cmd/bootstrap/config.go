package bootstrap

import (
	"campsite-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
