package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/filmstore-api/internal/config"
	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/platform/sqlstore"
	"github.com/phrazzld/filmstore-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	movieService *service.ResourceService[domain.Movie]
	userService  *service.ResourceService[domain.User]
}

// newApplication opens the store and builds the services on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, dialect, err := sqlstore.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	app, err := newApplicationWithDB(cfg, logger, db, dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// newApplicationWithDB wires the application around an open database. The
// application takes ownership of db and closes it in cleanup.
func newApplicationWithDB(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	dialect sqlstore.Dialect,
) (*application, error) {
	movieService, err := service.NewMovieService(sqlstore.NewMovieStore(db, dialect, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create movie service: %w", err)
	}

	userService, err := service.NewUserService(sqlstore.NewUserStore(db, dialect, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		movieService: movieService,
		userService:  userService,
	}, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		return
	}
	app.logger.Info("database connection closed")
}
