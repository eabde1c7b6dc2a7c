package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed schema
var schemaFS embed.FS

// ApplySchema brings the movies and users tables of db up to date using the
// goose migrations embedded for dialect. It is used by tooling and tests; the
// server expects the schema to exist already.
func ApplySchema(ctx context.Context, db *sql.DB, dialect Dialect, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	dir, err := fs.Sub(schemaFS, "schema/"+dialect.String())
	if err != nil {
		return fmt.Errorf("failed to open schema for %s: %w", dialect, err)
	}

	provider, err := goose.NewProvider(dialect.goose(), db, dir)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	for _, r := range results {
		logger.Info("applied migration",
			slog.String("dialect", dialect.String()),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	return nil
}
