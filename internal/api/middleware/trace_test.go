package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/filmstore-api/internal/api/shared"
	"github.com/phrazzld/filmstore-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceGeneratesID(t *testing.T) {
	var seen string
	handler := Trace(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		assert.NotNil(t, logger.FromContext(r.Context()))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(TraceIDHeader))
}

func TestTraceReusesClientID(t *testing.T) {
	var seen string
	handler := Trace(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "abc-123_DEF")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123_DEF", seen)
	assert.Equal(t, "abc-123_DEF", rec.Header().Get(TraceIDHeader))
}

func TestTraceReplacesMalformedClientID(t *testing.T) {
	for _, bad := range []string{"has space", "semi;colon", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceIDHeader, bad)
		rec := httptest.NewRecorder()
		Trace(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

		got := rec.Header().Get(TraceIDHeader)
		assert.NotEqual(t, bad, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, bad)
	}
}

func TestTraceLogsWithTraceID(t *testing.T) {
	buf := logger.CaptureDefault(t)

	handler := Trace(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside handler")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var found bool
	for _, entry := range buf.Entries(t) {
		if entry["msg"] == "inside handler" {
			found = true
			assert.Equal(t, "trace-1", entry["trace_id"])
		}
	}
	assert.True(t, found, "handler log entry not captured")
}
