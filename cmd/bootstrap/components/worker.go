package components

import (
	"context"
	"log/slog"

	"seat-reservation/internal/infra/lease"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/metrics"
	"seat-reservation/internal/usecase/shared"
	"seat-reservation/internal/worker/reaper"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReaper,
	),
	fx.Invoke(startReaper),
)

func NewReaper(uow shared.UnitOfWork, clk clock.Clock, l lease.Lease, m *metrics.Metrics, logger *slog.Logger, cfg config.Config) *reaper.Reaper {
	return reaper.New(uow, clk, l, m, logger, reaper.Config{
		Interval:  cfg.Reaper.Interval,
		TTL:       cfg.Reaper.TTL,
		BatchSize: cfg.Reaper.BatchSize,
	})
}

func startReaper(lc fx.Lifecycle, r *reaper.Reaper, cfg config.Config, logger *slog.Logger) {
	if !cfg.Reaper.Enabled {
		logger.Info("reaper disabled by configuration")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			r.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return r.Stop(ctx)
		},
	})
}
