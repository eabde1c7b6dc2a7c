package testutils

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/phrazzld/filmstore-api/internal/domain"
)

// InputOption modifies a payload built by MovieInput or UserInput.
type InputOption func(domain.Input)

// With sets field to value.
func With(field string, value any) InputOption {
	return func(in domain.Input) {
		in[field] = value
	}
}

// Without removes field.
func Without(field string) InputOption {
	return func(in domain.Input) {
		delete(in, field)
	}
}

func apply(in domain.Input, opts []InputOption) domain.Input {
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// MovieInput returns a valid movie payload.
func MovieInput(opts ...InputOption) domain.Input {
	return apply(domain.Input{
		"title":    "Star Wars",
		"director": "George Lucas",
		"year":     "1977",
		"color":    "1",
		"duration": json.Number("120"),
	}, opts)
}

// UserInput returns a valid user payload with a unique email.
func UserInput(opts ...InputOption) domain.Input {
	return apply(domain.Input{
		"firstname": "Harry",
		"lastname":  "Potter",
		"email":     UniqueEmail(),
		"city":      "London",
		"language":  "English",
	}, opts)
}

// UniqueEmail returns an email address that is unique per call.
func UniqueEmail() string {
	return "test-" + uuid.NewString() + "@example.com"
}

// MovieFields are the mutable movie fields.
var MovieFields = []string{"title", "director", "year", "color", "duration"}

// UserFields are the mutable user fields.
var UserFields = []string{"firstname", "lastname", "email", "city", "language"}
