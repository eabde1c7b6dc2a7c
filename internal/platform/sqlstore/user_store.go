package sqlstore

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/store"
)

var userSpec = tableSpec[domain.User]{
	entity:   "user",
	table:    "users",
	columns:  []string{"firstname", "lastname", "email", "city", "language"},
	notFound: store.ErrUserNotFound,
	values: func(u *domain.User) []any {
		return []any{u.Firstname, u.Lastname, u.Email, u.City, u.Language}
	},
	scan: func(s scanner, u *domain.User) error {
		return s.Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Email, &u.City, &u.Language)
	},
}

// UserStore implements store.UserStore on the users table.
type UserStore struct {
	*table[domain.User]
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore running statements on db, which may be a
// pool or a transaction. A nil logger means slog.Default().
func NewUserStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *UserStore {
	return &UserStore{table: newTable(userSpec, db, dialect, logger)}
}

// WithTx implements store.UserStore.WithTx.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{table: s.withDB(tx)}
}
