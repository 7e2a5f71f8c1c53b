package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"seat-reservation/internal/infra/lease"
	"seat-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewReaperLease,
	),
)

// NewReaperLease returns a Redis-backed lease when REDIS_ADDR is set and a
// no-op lease otherwise.
func NewReaperLease(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (lease.Lease, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, reaper runs without a distributed lease")
		return lease.NopLease{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lease.NewRedisLease(client, lease.ReaperKey, cfg.Redis.LeaseTTL), nil
}
