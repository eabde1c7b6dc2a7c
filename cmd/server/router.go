package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/filmstore-api/internal/api"
	apiMiddleware "github.com/phrazzld/filmstore-api/internal/api/middleware"
)

// Idle rate-limit clients are swept on this schedule.
const (
	rateLimitSweepInterval = time.Minute
	rateLimitIdleTimeout   = 3 * time.Minute
)

// setupRouter creates the application router with all routes and middleware.
// Background work started for the router stops when ctx is canceled.
func (app *application) setupRouter(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)

	if cfg := app.config.RateLimit; cfg.Enabled {
		limiter := apiMiddleware.NewRateLimiter(cfg)
		go limiter.Run(ctx, rateLimitSweepInterval, rateLimitIdleTimeout, app.logger)
		r.Use(limiter.Handler)
	}

	r.Method(http.MethodGet, "/health", api.NewHealthHandler(app.db, app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequestSize(app.config.Server.MaxBodyBytes))

		r.Route("/movies", api.NewResourceHandler("movie", app.movieService, app.logger).Routes)
		r.Route("/users", api.NewResourceHandler("user", app.userService, app.logger).Routes)
	})

	return r
}
