package bootstrap

import (
	"context"
	"log/slog"

	"seat-reservation/internal/infra/db"
	"seat-reservation/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool, applying pending migrations first when
// DB_AUTO_MIGRATE is on.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.AutoMigrate {
		if err := migrateOnStart(cfg.DB, logger); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready",
		"max_conns", cfg.DB.MaxConns,
		"lock_timeout", cfg.DB.LockTimeout.String(),
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}

func migrateOnStart(cfg config.DBConfig, logger *slog.Logger) error {
	m, err := db.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := db.MigrateUp(m); err != nil {
		return err
	}
	version, dirty, _ := m.Version()
	logger.Info("schema migrated", "version", version, "dirty", dirty)
	return nil
}
