package store

import (
	"context"
	"database/sql"
)

// DBTX is the statement surface shared by *sql.DB and *sql.Tx, so that a
// repository can run against either a pool or an open transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
