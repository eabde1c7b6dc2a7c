// Package sqlstore implements the store repositories on database/sql. The
// same repositories serve PostgreSQL (through the pgx stdlib driver) and
// SQLite (through modernc.org/sqlite); a Dialect adapts placeholders and
// schema files to the backend.
package sqlstore
