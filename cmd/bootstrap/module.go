package bootstrap

import (
	"seat-reservation/cmd/bootstrap/components"
	"seat-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	AuthModule,
	MetricsModule,
	RedisModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
