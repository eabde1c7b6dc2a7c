package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a payload fails validation.
	// It is the root of both mode-specific validation errors below.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField is reported when a create payload lacks a required field
	// or carries one with the wrong shape. API layer maps this to 400.
	ErrMissingField = fmt.Errorf("%w: missing or invalid field", ErrValidation)

	// ErrInvalidUpdate is reported for the same structural defects in an
	// update payload. API layer maps this to 422.
	ErrInvalidUpdate = fmt.Errorf("%w: invalid update", ErrValidation)
)
