package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	_ "modernc.org/sqlite"             // sqlite driver

	"github.com/phrazzld/filmstore-api/internal/config"
	"github.com/phrazzld/filmstore-api/internal/redact"
)

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// Open connects to the database described by cfg, applies the pool settings
// and verifies the connection. The caller owns the returned *sql.DB and must
// close it on shutdown.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, Dialect, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dialect, err := DialectForDriver(cfg.Driver)
	if err != nil {
		return nil, 0, err
	}

	db, err := sql.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open database connection: %w", err)
	}

	if dialect == SQLite {
		// One writer at a time; per-connection pragmas must survive, so the
		// single connection is never recycled.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		if err := configureSQLite(ctx, db); err != nil {
			_ = db.Close()
			return nil, 0, err
		}
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, 0, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("dialect", dialect.String()),
		slog.String("url", redact.String(cfg.URL)))

	return db, dialect, nil
}

func configureSQLite(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}
