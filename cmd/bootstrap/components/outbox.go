package components

import (
	"context"
	"log/slog"
	"sync"

	"campsite-reservation/internal/infra/outbox"
	"campsite-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay runs the relay for the lifetime of the app. Without brokers
// events accumulate in the outbox until a relay is configured.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, source outbox.Source, logger *slog.Logger) {
	writer := outbox.NewKafkaWriter(cfg.Kafka)
	if writer == nil {
		logger.Info("outbox relay disabled: no KAFKA_BROKERS configured")
		return
	}
	relay := outbox.NewRelay(source, writer, cfg.Kafka)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				relay.Run(ctx)
			}()
			logger.Info("outbox relay started", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return writer.Close()
		},
	})
}
