package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/filmstore-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoJSON serves a request with body encoded as JSON through handler and
// returns the recorded response. A string body is sent verbatim; a nil body
// sends no body.
func DoJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err, "Failed to encode request body")
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON decodes a recorded JSON response body into a T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	dec := json.NewDecoder(bytes.NewReader(rec.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&v), "Failed to decode response body: %s", rec.Body.String())
	return v
}

// AssertJSONResponse checks the status code and JSON content type of a response.
func AssertJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

// AssertErrorResponse checks that a response is a JSON error with the expected
// status code and returns the decoded body.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int) shared.ErrorResponse {
	t.Helper()

	AssertJSONResponse(t, rec, expectedStatus)
	body := DecodeJSON[shared.ErrorResponse](t, rec)
	assert.NotEmpty(t, body.Error, "error message should not be empty")
	return body
}

// AssertNoContent checks for an empty 204 response.
func AssertNoContent(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusNoContent, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assert.Empty(t, rec.Body.String())
}

// CreateRecord POSTs in to path, asserts 201 and returns the new id.
func CreateRecord(t *testing.T, handler http.Handler, path string, in any) int64 {
	t.Helper()

	rec := DoJSON(t, handler, http.MethodPost, path, in)
	AssertJSONResponse(t, rec, http.StatusCreated)

	body := DecodeJSON[map[string]json.Number](t, rec)
	id, err := body["id"].Int64()
	require.NoError(t, err, "id is not an integer: %s", rec.Body.String())
	return id
}
