package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/filmstore-api/internal/config"
	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/testdb"
	"github.com/phrazzld/filmstore-api/internal/testutils"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			LogFormat:       "json",
			ShutdownTimeout: 5 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
	}
}

// newTestApp wires an application around a fresh test database.
func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()

	db, dialect := testdb.Open(t)

	app, err := newApplicationWithDB(cfg, slog.Default(), db, dialect)
	require.NoError(t, err)
	return app
}

// newTestRouter returns the full application router over a fresh database.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return newTestApp(t, testConfig()).setupRouter(ctx)
}

// resource describes one CRUD resource for tests that run against both.
type resource struct {
	name        string
	path        string
	fields      []string
	input       func(opts ...testutils.InputOption) domain.Input
	replacement func() domain.Input
}

var resources = []resource{
	{
		name:   "movies",
		path:   "/api/movies",
		fields: testutils.MovieFields,
		input:  testutils.MovieInput,
		replacement: func() domain.Input {
			return domain.Input{
				"title":    "The Empire Strikes Back",
				"director": "Irvin Kershner",
				"year":     "1980",
				"color":    "0",
				"duration": 124,
			}
		},
	},
	{
		name:   "users",
		path:   "/api/users",
		fields: testutils.UserFields,
		input:  testutils.UserInput,
		replacement: func() domain.Input {
			return domain.Input{
				"firstname": "Hermione",
				"lastname":  "Granger",
				"email":     testutils.UniqueEmail(),
				"city":      "Hampstead",
				"language":  "Latin",
			}
		},
	},
}

func (r resource) item(id any) string {
	return fmt.Sprintf("%s/%v", r.path, id)
}

// assertRecordMatches checks that every field of the fetched record equals the submitted value.
func assertRecordMatches(t *testing.T, fields []string, want domain.Input, got map[string]any) {
	t.Helper()
	for _, f := range fields {
		require.Equal(t, fmt.Sprint(want[f]), fmt.Sprint(got[f]), "field %s", f)
	}
}
