package components

import (
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/metrics"
	"seat-reservation/internal/usecase/commands"
	"seat-reservation/internal/usecase/queries"
	"seat-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRetryPolicy,
	fx.Annotate(
		func(m *metrics.Metrics) *metrics.Metrics { return m },
		fx.As(new(commands.OperationRecorder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

func NewRetryPolicy(cfg config.Config) shared.RetryPolicy {
	return shared.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
	}
}
