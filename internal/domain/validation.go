package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode is the operation a payload is validated for. The same shape checks run
// in every mode; the mode only decides which error kind a failure reports.
type Mode int

const (
	// ModeCreate validates a payload for record creation.
	ModeCreate Mode = iota
	// ModeUpdate validates a payload for full record replacement.
	ModeUpdate
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Kind returns the sentinel error that validation failures carry in this mode.
func (m Mode) Kind() error {
	if m == ModeUpdate {
		return ErrInvalidUpdate
	}
	return ErrMissingField
}

// Input is a raw request payload: a decoded JSON object. Numbers are expected
// as json.Number, but plain Go numeric values are accepted too.
type Input map[string]any

// FieldError describes a single failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structural defect in a payload, classified by Mode.
// It matches ErrValidation and the mode's kind (ErrMissingField or
// ErrInvalidUpdate) under errors.Is.
type ValidationError struct {
	Mode   Mode
	Fields []FieldError
}

// NewValidationError creates a ValidationError for the given mode.
func NewValidationError(mode Mode, fields ...FieldError) *ValidationError {
	return &ValidationError{Mode: mode, Fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	if len(parts) == 0 {
		return e.Mode.Kind().Error()
	}
	return fmt.Sprintf("%v: %s", e.Mode.Kind(), strings.Join(parts, "; "))
}

// Unwrap exposes the mode's kind for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Mode.Kind()
}

// fieldKind is the expected shape of a payload field.
type fieldKind int

const (
	textField fieldKind = iota
	integerField
)

type field struct {
	name string
	kind fieldKind
}

// values holds the normalized field values of a payload.
type values map[string]any

func (v values) text(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v values) integer(name string) int64 {
	n, _ := v[name].(int64)
	return n
}

// structValidator checks the normalized records. Field names in its errors are
// the JSON names.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRecord runs the shared validation pipeline: every declared field is
// normalized to its Go type, the resulting record is struct-validated, and all
// failures are reported together under the mode's kind.
func validateRecord[R any](mode Mode, in Input, fields []field, build func(values) R) (R, error) {
	var zero R
	if in == nil {
		return zero, NewValidationError(mode, FieldError{Field: "body", Message: "must be a JSON object"})
	}

	vals, failed := normalize(in, fields)
	record := build(vals)

	if err := structValidator.Struct(record); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return zero, fmt.Errorf("validate %T: %w", record, err)
		}
		for _, fe := range verrs {
			if _, seen := failed[fe.Field()]; !seen {
				failed[fe.Field()] = tagMessage(fe.Tag())
			}
		}
	}

	if len(failed) > 0 {
		verr := NewValidationError(mode)
		for _, f := range fields {
			if msg, ok := failed[f.name]; ok {
				verr.Fields = append(verr.Fields, FieldError{Field: f.name, Message: msg})
			}
		}
		return zero, verr
	}

	return record, nil
}

// normalize converts each declared field of in to a string or an int64.
// Text fields must already be strings; only integer fields are coerced.
// It returns the converted values and a message per failing field.
func normalize(in Input, fields []field) (values, map[string]string) {
	vals := make(values, len(fields))
	failed := make(map[string]string)

	for _, f := range fields {
		raw, ok := in[f.name]
		if !ok || raw == nil {
			failed[f.name] = "is required"
			continue
		}

		switch f.kind {
		case textField:
			s, ok := raw.(string)
			if !ok {
				failed[f.name] = "must be a string"
				continue
			}
			vals[f.name] = s
		case integerField:
			n, ok := asInteger(raw)
			if !ok {
				failed[f.name] = "must be an integer"
				continue
			}
			vals[f.name] = n
		}
	}

	return vals, failed
}

// asInteger accepts integers, integral floats and strings holding an integer.
func asInteger(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return integralFloat(v)
	default:
		return 0, false
	}
}

func integralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// tagMessage maps validator tags to client-facing messages.
func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "must not be empty"
	default:
		return "is invalid"
	}
}
