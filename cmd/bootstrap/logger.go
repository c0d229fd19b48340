package bootstrap

import (
	"log/slog"

	"campsite-reservation/internal/handler/middleware"
	"campsite-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *slog.Logger {
			return middleware.NewLogger(cfg.Log)
		},
	),
)
