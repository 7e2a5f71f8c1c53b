package db

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"seat-reservation/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool whose sessions carry the lock, statement and idle
// transaction timeouts from cfg.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	params := poolCfg.ConnConfig.RuntimeParams
	params["lock_timeout"] = millis(cfg.LockTimeout)
	params["statement_timeout"] = millis(cfg.StatementTimeout)
	params["idle_in_transaction_session_timeout"] = millis(cfg.IdleTxTimeout)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
		slog.Info("database pool closed")
	}

	return pool, cleanup, nil
}

// PostgreSQL reads unit-less timeout settings as milliseconds; 0 disables.
func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}
