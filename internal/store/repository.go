package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/filmstore-api/internal/domain"
)

// Repository is the persistence contract for one record type.
// Implementations must be safe for concurrent use; each call is a single
// statement and relies on the database for atomicity.
type Repository[R any] interface {
	// FindAll returns every record in insertion order. An empty store yields
	// an empty, non-nil slice.
	FindAll(ctx context.Context) ([]R, error)

	// FindByID returns the record with the given id.
	// Returns an error wrapping ErrNotFound if no such record exists.
	FindByID(ctx context.Context, id int64) (*R, error)

	// Insert stores a new record and returns the id the store generated for it.
	// Any ID already set on the record is ignored.
	Insert(ctx context.Context, record *R) (int64, error)

	// UpdateByID replaces every mutable field of the record with the given id.
	// It returns the number of affected rows: 0 when the id does not exist.
	UpdateByID(ctx context.Context, id int64, record *R) (int64, error)

	// DeleteByID removes the record with the given id.
	// It returns the number of affected rows: 0 when the id does not exist.
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// MovieStore persists movies.
type MovieStore interface {
	Repository[domain.Movie]

	// WithTx returns a MovieStore that runs its statements in tx.
	WithTx(tx *sql.Tx) MovieStore
}

// UserStore persists users.
type UserStore interface {
	Repository[domain.User]

	// WithTx returns a UserStore that runs its statements in tx.
	WithTx(tx *sql.Tx) UserStore
}
