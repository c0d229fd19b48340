package bootstrap

import (
	"context"
	"log/slog"

	"campsite-reservation/internal/pkg/config"
	"campsite-reservation/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(StartTracing),
)

// StartTracing installs the global tracer provider before any request is served.
func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	if cfg.Tracing.Endpoint != "" {
		slog.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
	}
	lc.Append(fx.Hook{OnStop: shutdown})
	return nil
}
