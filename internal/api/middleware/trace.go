package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/filmstore-api/internal/api/shared"
	"github.com/phrazzld/filmstore-api/internal/platform/logger"
)

// TraceIDHeader carries the request's trace ID in both directions.
const TraceIDHeader = "X-Trace-Id"

// maxTraceIDLength caps client-supplied trace IDs.
const maxTraceIDLength = 64

// Trace returns middleware that gives every request a trace ID and a
// request-scoped logger carrying it. A well-formed X-Trace-Id from the client
// is reused; otherwise a new one is generated. The ID is echoed in the
// response header.
//
// It should be applied early in the middleware chain so that all subsequent
// handlers have access to the trace ID.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if !validTraceID(traceID) {
				traceID = uuid.NewString()
			}

			log := base.With(slog.String("trace_id", traceID))
			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithContext(ctx, log)

			w.Header().Set(TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validTraceID accepts short tokens of letters, digits, '-' and '_'.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
