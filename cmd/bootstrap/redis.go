package bootstrap

import (
	"context"
	"log/slog"

	"course-booking/internal/infra/cache"
	"course-booking/internal/pkg/config"
	"course-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewPrefillStore,
	),
)

// NewPrefillStore falls back to a no-op store when REDIS_ADDR is unset.
func NewPrefillStore(lc fx.Lifecycle, cfg config.Config) shared.PrefillStore {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set, applicant prefill disabled")
		return cache.NopPrefillStore{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable, prefill reads will miss", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisPrefillStore(client, cfg.Redis.PrefillTTL)
}
