package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/filmstore-api/internal/api/shared"
	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/platform/logger"
)

// ResourceService is the set of operations a ResourceHandler exposes over HTTP.
type ResourceService[R any] interface {
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, rawID string) (*R, error)
	Create(ctx context.Context, in domain.Input) (int64, error)
	Replace(ctx context.Context, rawID string, in domain.Input) error
	Delete(ctx context.Context, rawID string) error
}

// ResourceHandler handles the CRUD endpoints of one resource.
type ResourceHandler[R any] struct {
	service ResourceService[R]
	logger  *slog.Logger
}

// NewResourceHandler creates a ResourceHandler. name is used for logging only.
func NewResourceHandler[R any](name string, service ResourceService[R], logger *slog.Logger) *ResourceHandler[R] {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for ResourceHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ResourceHandler")
	}

	return &ResourceHandler[R]{
		service: service,
		logger:  logger.With(slog.String("component", name+"_handler")),
	}
}

// Routes registers the resource endpoints on r, relative to the resource path.
func (h *ResourceHandler[R]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Replace)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /api/{resource}.
func (h *ResourceHandler[R]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// Get handles GET /api/{resource}/{id}.
func (h *ResourceHandler[R]) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// Create handles POST /api/{resource}.
func (h *ResourceHandler[R]) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.Create(r.Context(), h.decode(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// Replace handles PUT /api/{resource}/{id}.
func (h *ResourceHandler[R]) Replace(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Replace(r.Context(), chi.URLParam(r, "id"), h.decode(r)); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithNoContent(w)
}

// Delete handles DELETE /api/{resource}/{id}.
func (h *ResourceHandler[R]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithNoContent(w)
}

// decode reads the request body. A body that is not a JSON object yields a
// nil Input, which the validator reports as a defect of the current mode.
func (h *ResourceHandler[R]) decode(r *http.Request) domain.Input {
	in, err := shared.DecodeInput(r)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("undecodable request body", slog.String("error", err.Error()))
		return nil
	}
	return in
}
