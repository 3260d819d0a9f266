package bootstrap

import (
	"context"
	"log/slog"

	"table-booking/internal/infra/cache"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/rating"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewRatingCache,
			fx.As(new(queries.RatingCache), new(rating.AggregateCache)),
		),
	),
)

// NewRedisClient returns nil when no address is configured. An unreachable
// Redis is logged and tolerated; the rating cache degrades to misses.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, rating cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb
}

func NewRatingCache(rdb *redis.Client, cfg config.Config) *cache.RatingCache {
	return cache.NewRatingCache(rdb, cfg.Redis.TTL)
}
