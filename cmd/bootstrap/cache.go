package bootstrap

import (
	"context"
	"log/slog"

	"staybook/internal/infra/cache"
	"staybook/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient starts even when Redis is down; every cache call then degrades to a miss.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, continuing without cache", "error", err.Error())
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
