package cache

import (
	"context"
	"log/slog"

	"marketplace-orders/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when the server cannot be reached; callers degrade
// to running without rate limiting.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled",
			slog.String("addr", cfg.Addr),
			slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	return client
}
