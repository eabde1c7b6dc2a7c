package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/filmstore-api/internal/config"
	"github.com/phrazzld/filmstore-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// DatabaseURLEnv names the variable selecting a PostgreSQL test database.
const DatabaseURLEnv = "FILMSTORE_TEST_DATABASE_URL"

// IsIntegrationTestEnvironment reports whether tests run against PostgreSQL.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDatabaseURL returns the PostgreSQL URL for tests, or "" for SQLite.
func GetTestDatabaseURL() string {
	return os.Getenv(DatabaseURLEnv)
}

// Config returns the database configuration Open uses for t.
func Config(t *testing.T) config.DatabaseConfig {
	t.Helper()

	if url := GetTestDatabaseURL(); url != "" {
		return config.DatabaseConfig{
			Driver:          sqlstore.DriverPgx,
			URL:             url,
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Minute,
		}
	}

	return config.DatabaseConfig{
		Driver: sqlstore.DriverSQLite,
		URL:    "file:" + filepath.Join(t.TempDir(), "test.db"),
	}
}

// Open returns a migrated, empty database and its dialect. The connection is
// closed when the test completes.
func Open(t *testing.T) (*sql.DB, sqlstore.Dialect) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, dialect, err := sqlstore.Open(ctx, Config(t), nil)
	require.NoError(t, err, "Failed to open test database")

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	require.NoError(t, sqlstore.ApplySchema(ctx, db, dialect, nil), "Failed to apply schema")

	if dialect == sqlstore.Postgres {
		truncate(t, db)
		t.Cleanup(func() {
			truncate(t, db)
		})
	}

	return db, dialect
}

// truncate empties the tables and restarts their id sequences.
func truncate(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, "TRUNCATE movies, users RESTART IDENTITY"); err != nil {
		t.Errorf("Failed to truncate test tables: %v", err)
	}
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already committed or rolled back
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CleanupDB closes db, logging rather than failing on error.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()

	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
