package sqlstore

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/store"
)

var movieSpec = tableSpec[domain.Movie]{
	entity:   "movie",
	table:    "movies",
	columns:  []string{"title", "director", "year", "color", "duration"},
	notFound: store.ErrMovieNotFound,
	values: func(m *domain.Movie) []any {
		return []any{m.Title, m.Director, m.Year, m.Color, m.Duration}
	},
	scan: func(s scanner, m *domain.Movie) error {
		return s.Scan(&m.ID, &m.Title, &m.Director, &m.Year, &m.Color, &m.Duration)
	},
}

// MovieStore implements store.MovieStore on the movies table.
type MovieStore struct {
	*table[domain.Movie]
}

// Ensure MovieStore implements store.MovieStore interface
var _ store.MovieStore = (*MovieStore)(nil)

// NewMovieStore creates a MovieStore running statements on db, which may be a
// pool or a transaction. A nil logger means slog.Default().
func NewMovieStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *MovieStore {
	return &MovieStore{table: newTable(movieSpec, db, dialect, logger)}
}

// WithTx implements store.MovieStore.WithTx.
func (s *MovieStore) WithTx(tx *sql.Tx) store.MovieStore {
	return &MovieStore{table: s.withDB(tx)}
}
