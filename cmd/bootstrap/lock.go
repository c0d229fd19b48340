package bootstrap

import (
	"context"
	"log/slog"

	"campsite-reservation/internal/infra/lock"
	"campsite-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker uses Redis when REDIS_ADDR is set so several instances share one lock.
func NewLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) lock.Locker {
	if cfg.Redis.Addr == "" {
		logger.Info("using in-process booking lock")
		return lock.NewLocalLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("using redis booking lock", "addr", cfg.Redis.Addr)
	return lock.NewRedisLocker(client, cfg.Redis.LockTTL, cfg.Redis.LockWait)
}
