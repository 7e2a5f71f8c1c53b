package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"seat-reservation/internal/infra/db"
	"seat-reservation/internal/pkg/config"
)

// Usage: migrate [up|down|version|force N]
func main() {
	flag.Parse()
	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	m, err := db.NewMigrator(cfg.DB)
	if err != nil {
		slog.Error("マイグレーションの初期化に失敗しました", "error", err)
		os.Exit(1)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	switch cmd {
	case "up":
		err = db.MigrateUp(m)
	case "down":
		err = m.Down()
	case "force":
		var version int
		version, err = strconv.Atoi(flag.Arg(1))
		if err == nil {
			err = m.Force(version)
		}
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = m.Version()
		if err == nil {
			slog.Info("current schema version", "version", version, "dirty", dirty)
		}
	default:
		err = errors.New("unknown command " + strconv.Quote(cmd))
	}

	if err != nil {
		slog.Error("マイグレーションに失敗しました", "command", cmd, "error", err)
		os.Exit(1)
	}
	slog.Info("マイグレーションが完了しました", "command", cmd)
}
