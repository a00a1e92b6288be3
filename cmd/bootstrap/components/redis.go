package components

import (
	"context"
	"log/slog"

	"marketplace-orders/internal/handler/middleware"
	"marketplace-orders/internal/infra/cache"
	"marketplace-orders/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewRateLimitMiddleware,
	),
)

// NewRedis returns nil when rate limiting is disabled or Redis is unreachable.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	client := cache.NewRedisClient(context.Background(), cfg.Redis, logger)
	if client == nil {
		return nil
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewRateLimitMiddleware(client *redis.Client, cfg config.Config) *middleware.RateLimitMiddleware {
	if client == nil {
		return middleware.NewRateLimitMiddleware(nil)
	}
	return middleware.NewRateLimitMiddleware(cache.NewRateLimiter(client, cfg.RateLimit))
}
