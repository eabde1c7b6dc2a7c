package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/filmstore-api/internal/store"
)

// scanner is the Scan method shared by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// tableSpec describes how one record type maps onto a table whose primary
// key is an integer id column generated by the database.
type tableSpec[R any] struct {
	entity   string   // entity name used in errors and logs
	table    string   // table name
	columns  []string // mutable columns, in argument order
	notFound error    // entity-specific store.ErrNotFound

	// values returns the mutable column values of r in columns order.
	values func(r *R) []any
	// scan reads id followed by the mutable columns into r.
	scan func(s scanner, r *R) error
}

// queries holds a tableSpec's statements, rebound for a dialect.
type queries struct {
	selectAll string
	selectOne string
	insert    string
	update    string
	delete    string
}

func (s tableSpec[R]) queries(d Dialect) queries {
	cols := strings.Join(s.columns, ", ")
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(s.columns)), ", ")
	sets := make([]string, len(s.columns))
	for i, c := range s.columns {
		sets[i] = c + " = ?"
	}

	return queries{
		selectAll: d.Rebind(fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id", cols, s.table)),
		selectOne: d.Rebind(fmt.Sprintf("SELECT id, %s FROM %s WHERE id = ?", cols, s.table)),
		insert:    d.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", s.table, cols, marks)),
		update:    d.Rebind(fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", s.table, strings.Join(sets, ", "))),
		delete:    d.Rebind(fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.table)),
	}
}

// table implements store.Repository[R] for a tableSpec.
type table[R any] struct {
	spec    tableSpec[R]
	q       queries
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

func newTable[R any](spec tableSpec[R], db store.DBTX, dialect Dialect, logger *slog.Logger) *table[R] {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &table[R]{
		spec:    spec,
		q:       spec.queries(dialect),
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", spec.entity+"_store")),
	}
}

// withDB returns a copy of t that runs its statements on db.
func (t *table[R]) withDB(db store.DBTX) *table[R] {
	c := *t
	c.db = db
	return &c
}

func (t *table[R]) fail(op, msg string, err error) error {
	return store.NewStoreError(t.spec.entity, op, msg, MapError(err))
}

// FindAll implements store.Repository.FindAll.
func (t *table[R]) FindAll(ctx context.Context) ([]R, error) {
	rows, err := t.db.QueryContext(ctx, t.q.selectAll)
	if err != nil {
		return nil, t.fail("find_all", "failed to query "+t.spec.table, err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]R, 0)
	for rows.Next() {
		var r R
		if err := t.spec.scan(rows, &r); err != nil {
			return nil, t.fail("find_all", "failed to scan "+t.spec.entity, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, t.fail("find_all", "failed to iterate "+t.spec.table, err)
	}

	t.logger.DebugContext(ctx, "listed records", slog.Int("count", len(records)))
	return records, nil
}

// FindByID implements store.Repository.FindByID.
func (t *table[R]) FindByID(ctx context.Context, id int64) (*R, error) {
	var r R
	err := t.spec.scan(t.db.QueryRowContext(ctx, t.q.selectOne, id), &r)
	if errors.Is(err, sql.ErrNoRows) {
		t.logger.DebugContext(ctx, "record not found", slog.Int64("id", id))
		return nil, t.spec.notFound
	}
	if err != nil {
		return nil, t.fail("find", fmt.Sprintf("failed to get %s %d", t.spec.entity, id), err)
	}
	return &r, nil
}

// Insert implements store.Repository.Insert.
func (t *table[R]) Insert(ctx context.Context, record *R) (int64, error) {
	var id int64
	if err := t.db.QueryRowContext(ctx, t.q.insert, t.spec.values(record)...).Scan(&id); err != nil {
		return 0, t.fail("insert", "failed to insert "+t.spec.entity, err)
	}

	t.logger.DebugContext(ctx, "record inserted", slog.Int64("id", id))
	return id, nil
}

// UpdateByID implements store.Repository.UpdateByID.
func (t *table[R]) UpdateByID(ctx context.Context, id int64, record *R) (int64, error) {
	args := append(t.spec.values(record), id)
	result, err := t.db.ExecContext(ctx, t.q.update, args...)
	if err != nil {
		return 0, t.fail("update", fmt.Sprintf("failed to update %s %d", t.spec.entity, id), err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, t.fail("update", fmt.Sprintf("failed to update %s %d", t.spec.entity, id), err)
	}

	t.logger.DebugContext(ctx, "record updated", slog.Int64("id", id), slog.Int64("affected", n))
	return n, nil
}

// DeleteByID implements store.Repository.DeleteByID.
func (t *table[R]) DeleteByID(ctx context.Context, id int64) (int64, error) {
	result, err := t.db.ExecContext(ctx, t.q.delete, id)
	if err != nil {
		return 0, t.fail("delete", fmt.Sprintf("failed to delete %s %d", t.spec.entity, id), err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, t.fail("delete", fmt.Sprintf("failed to delete %s %d", t.spec.entity, id), err)
	}

	t.logger.DebugContext(ctx, "record deleted", slog.Int64("id", id), slog.Int64("affected", n))
	return n, nil
}
