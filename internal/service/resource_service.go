package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/platform/logger"
	"github.com/phrazzld/filmstore-api/internal/redact"
	"github.com/phrazzld/filmstore-api/internal/store"
)

// Validator turns a raw payload into a record, or fails with a
// *domain.ValidationError classified by mode.
type Validator[R any] func(mode domain.Mode, in domain.Input) (R, error)

// ResourceService provides the list, get, create, replace and delete
// operations for one record type.
type ResourceService[R any] struct {
	name     string
	repo     store.Repository[R]
	validate Validator[R]
	notFound error
	logger   *slog.Logger
}

// NewResourceService creates a ResourceService for the entity called name.
// notFound is returned (wrapped) whenever an id addresses no record.
// It returns an error if any of the required dependencies are nil.
func NewResourceService[R any](
	name string,
	repo store.Repository[R],
	validate Validator[R],
	notFound error,
	logger *slog.Logger,
) (*ResourceService[R], error) {
	if repo == nil {
		return nil, errors.New("repository cannot be nil")
	}
	if validate == nil {
		return nil, errors.New("validator cannot be nil")
	}
	if notFound == nil {
		notFound = store.ErrNotFound
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ResourceService[R]{
		name:     name,
		repo:     repo,
		validate: validate,
		notFound: notFound,
		logger:   logger.With(slog.String("component", name+"_service")),
	}, nil
}

// NewMovieService creates the ResourceService for movies.
func NewMovieService(repo store.Repository[domain.Movie], logger *slog.Logger) (*ResourceService[domain.Movie], error) {
	return NewResourceService("movie", repo, domain.ValidateMovie, store.ErrMovieNotFound, logger)
}

// NewUserService creates the ResourceService for users.
func NewUserService(repo store.Repository[domain.User], logger *slog.Logger) (*ResourceService[domain.User], error) {
	return NewResourceService("user", repo, domain.ValidateUser, store.ErrUserNotFound, logger)
}

// Name returns the entity name the service was created for.
func (s *ResourceService[R]) Name() string {
	return s.name
}

// List returns every record in insertion order.
func (s *ResourceService[R]) List(ctx context.Context) ([]R, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("failed to list records", slog.String("error", redact.Error(err)))
		return nil, NewServiceError(s.name, "list", err)
	}

	log.Debug("listed records", slog.Int("count", len(records)))
	return records, nil
}

// Get returns the record addressed by rawID.
func (s *ResourceService[R]) Get(ctx context.Context, rawID string) (*R, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, ok := parseID(rawID)
	if !ok {
		log.Debug("unparseable id", slog.String("id", rawID))
		return nil, NewServiceError(s.name, "get", s.notFound)
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("record not found", slog.Int64("id", id))
			return nil, NewServiceError(s.name, "get", s.notFound)
		}
		log.Error("failed to get record",
			slog.Int64("id", id),
			slog.String("error", redact.Error(err)))
		return nil, NewServiceError(s.name, "get", err)
	}

	return record, nil
}

// Create validates in as a new record and stores it, returning its id.
func (s *ResourceService[R]) Create(ctx context.Context, in domain.Input) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := s.validate(domain.ModeCreate, in)
	if err != nil {
		log.Debug("rejected create payload", slog.String("error", err.Error()))
		return 0, NewServiceError(s.name, "create", err)
	}

	id, err := s.repo.Insert(ctx, &record)
	if err != nil {
		log.Error("failed to insert record", slog.String("error", redact.Error(err)))
		return 0, NewServiceError(s.name, "create", err)
	}

	log.Info("record created", slog.Int64("id", id))
	return id, nil
}

// Replace validates in as a full replacement and writes it over the record
// addressed by rawID. The payload is checked before the id.
func (s *ResourceService[R]) Replace(ctx context.Context, rawID string, in domain.Input) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := s.validate(domain.ModeUpdate, in)
	if err != nil {
		log.Debug("rejected update payload", slog.String("error", err.Error()))
		return NewServiceError(s.name, "replace", err)
	}

	id, ok := parseID(rawID)
	if !ok {
		log.Debug("unparseable id", slog.String("id", rawID))
		return NewServiceError(s.name, "replace", s.notFound)
	}

	n, err := s.repo.UpdateByID(ctx, id, &record)
	if err != nil {
		log.Error("failed to update record",
			slog.Int64("id", id),
			slog.String("error", redact.Error(err)))
		return NewServiceError(s.name, "replace", err)
	}
	if n == 0 {
		log.Debug("record not found", slog.Int64("id", id))
		return NewServiceError(s.name, "replace", s.notFound)
	}

	log.Info("record replaced", slog.Int64("id", id))
	return nil
}

// Delete removes the record addressed by rawID.
func (s *ResourceService[R]) Delete(ctx context.Context, rawID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, ok := parseID(rawID)
	if !ok {
		log.Debug("unparseable id", slog.String("id", rawID))
		return NewServiceError(s.name, "delete", s.notFound)
	}

	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		log.Error("failed to delete record",
			slog.Int64("id", id),
			slog.String("error", redact.Error(err)))
		return NewServiceError(s.name, "delete", err)
	}
	if n == 0 {
		log.Debug("record not found", slog.Int64("id", id))
		return NewServiceError(s.name, "delete", s.notFound)
	}

	log.Info("record deleted", slog.Int64("id", id))
	return nil
}

// parseID reads a base-10 record id. Ids that do not parse address no record.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || strconv.FormatInt(id, 10) != raw {
		return 0, false
	}
	return id, true
}
