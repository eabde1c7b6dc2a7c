// Package main implements a loader for sample movies and users.
//
// Usage:
//
//	seed [-config path] [-schema]
//
// The records are inserted in a single transaction. With -schema, the
// movies and users tables are created first if they do not exist.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/filmstore-api/internal/config"
	"github.com/phrazzld/filmstore-api/internal/platform/logger"
	"github.com/phrazzld/filmstore-api/internal/platform/sqlstore"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./config.yaml if present)")
	applySchema := flag.Bool("schema", false, "create the tables before seeding")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *applySchema); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, applySchema bool) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With(slog.String("component", "seed"))

	db, dialect, err := sqlstore.Open(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if applySchema {
		if err := sqlstore.ApplySchema(ctx, db, dialect, log); err != nil {
			return err
		}
	}

	result, err := seed(logger.WithContext(ctx, log), db, dialect, log)
	if err != nil {
		return err
	}

	log.Info("seed completed",
		slog.Int("movies", len(result.MovieIDs)),
		slog.Int("users", len(result.UserIDs)))
	return nil
}
