package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/filmstore-api/internal/domain"
)

// ErrInvalidBody is returned when a request body is not a single JSON object.
var ErrInvalidBody = errors.New("request body must be a single JSON object")

// DecodeInput decodes the request body as a JSON object. Numbers are kept as
// json.Number so that integer fields keep their exact value.
func DecodeInput(r *http.Request) (domain.Input, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidBody)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidBody, v)
	}
	return domain.Input(obj), nil
}
