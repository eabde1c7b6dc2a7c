// Package testdb provides real databases for tests.
//
// By default every call to Open creates a fresh SQLite database file in the
// test's temporary directory with the schema applied, so tests can run in
// parallel without sharing state.
//
// When FILMSTORE_TEST_DATABASE_URL is set, Open connects to that PostgreSQL
// database instead, applies the schema and truncates both tables before and
// after the test. Tests sharing one PostgreSQL database must not run
// concurrently; use go test -p 1 in that mode.
//
// Basic usage:
//
//	func TestMovieStore(t *testing.T) {
//	    t.Parallel()
//	    db, dialect := testdb.Open(t)
//	    movies := sqlstore.NewMovieStore(db, dialect, nil)
//	    ...
//	}
//
// WithTx runs a test body in a transaction that is always rolled back.
package testdb
