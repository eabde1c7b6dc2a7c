package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMovieInput() Input {
	return Input{
		"title":    "Star Wars",
		"director": "George Lucas",
		"year":     "1977",
		"color":    "1",
		"duration": json.Number("120"),
	}
}

func validUserInput() Input {
	return Input{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     "ada@example.com",
		"city":      "London",
		"language":  "English",
	}
}

func TestModeKind(t *testing.T) {
	assert.Equal(t, ErrMissingField, ModeCreate.Kind())
	assert.Equal(t, ErrInvalidUpdate, ModeUpdate.Kind())
	assert.Equal(t, "create", ModeCreate.String())
	assert.Equal(t, "update", ModeUpdate.String())
	assert.Equal(t, "mode(7)", Mode(7).String())
}

func TestValidateMovie_Valid(t *testing.T) {
	for _, mode := range []Mode{ModeCreate, ModeUpdate} {
		t.Run(mode.String(), func(t *testing.T) {
			movie, err := ValidateMovie(mode, validMovieInput())
			require.NoError(t, err)
			assert.Equal(t, Movie{
				Title:    "Star Wars",
				Director: "George Lucas",
				Year:     "1977",
				Color:    "1",
				Duration: 120,
			}, movie)
		})
	}
}

func TestValidateMovie_MissingEachField(t *testing.T) {
	for _, f := range movieFields {
		t.Run(f.name, func(t *testing.T) {
			in := validMovieInput()
			delete(in, f.name)

			_, err := ValidateMovie(ModeCreate, in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingField))
			assert.True(t, errors.Is(err, ErrValidation))
			assert.False(t, errors.Is(err, ErrInvalidUpdate))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []FieldError{{Field: f.name, Message: "is required"}}, verr.Fields)

			_, err = ValidateMovie(ModeUpdate, in)
			assert.True(t, errors.Is(err, ErrInvalidUpdate))
			assert.False(t, errors.Is(err, ErrMissingField))
		})
	}
}

func TestValidateMovie_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     any
		wantErr   string
		wantValue any
	}{
		{name: "empty title", field: "title", value: "", wantErr: "must not be empty"},
		{name: "null title", field: "title", value: nil, wantErr: "is required"},
		{name: "boolean director", field: "director", value: true, wantErr: "must be a string"},
		{name: "numeric title", field: "title", value: json.Number("42"), wantErr: "must be a string"},
		{name: "go int director", field: "director", value: 7, wantErr: "must be a string"},
		{name: "numeric year", field: "year", value: json.Number("1977"), wantErr: "must be a string"},
		{name: "numeric color", field: "color", value: json.Number("1"), wantErr: "must be a string"},
		{name: "float year", field: "year", value: 1977.0, wantErr: "must be a string"},
		{name: "string year", field: "year", value: "1977", wantValue: "1977"},
		{name: "free-form year", field: "year", value: "nineteen seventy-seven", wantValue: "nineteen seventy-seven"},
		{name: "color outside 0/1", field: "color", value: "2", wantValue: "2"},
		{name: "duration as string", field: "duration", value: "120", wantValue: int64(120)},
		{name: "duration integral float", field: "duration", value: json.Number("120.0"), wantValue: int64(120)},
		{name: "duration go int", field: "duration", value: 95, wantValue: int64(95)},
		{name: "duration zero", field: "duration", value: json.Number("0"), wantValue: int64(0)},
		{name: "duration fraction", field: "duration", value: json.Number("120.5"), wantErr: "must be an integer"},
		{name: "duration uuid string", field: "duration", value: "3f1c1b52-8f7e-4a51-9d43-8d1e0f0f6a55", wantErr: "must be an integer"},
		{name: "duration object", field: "duration", value: map[string]any{}, wantErr: "must be an integer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validMovieInput()
			in[tc.field] = tc.value

			movie, err := ValidateMovie(ModeCreate, in)
			if tc.wantErr != "" {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
				assert.Equal(t, []FieldError{{Field: tc.field, Message: tc.wantErr}}, verr.Fields)
				return
			}

			require.NoError(t, err)
			got := map[string]any{
				"year":     movie.Year,
				"color":    movie.Color,
				"duration": movie.Duration,
			}[tc.field]
			assert.Equal(t, tc.wantValue, got)
		})
	}
}

func TestValidateMovie_ReportsAllFields(t *testing.T) {
	_, err := ValidateMovie(ModeUpdate, Input{"title": "Harry Potter"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ModeUpdate, verr.Mode)
	assert.Equal(t, []FieldError{
		{Field: "director", Message: "is required"},
		{Field: "year", Message: "is required"},
		{Field: "color", Message: "is required"},
		{Field: "duration", Message: "is required"},
	}, verr.Fields)
	assert.Contains(t, err.Error(), "director is required")
}

func TestValidateMovie_NilInput(t *testing.T) {
	_, err := ValidateMovie(ModeCreate, nil)
	assert.True(t, errors.Is(err, ErrMissingField))

	_, err = ValidateMovie(ModeUpdate, nil)
	assert.True(t, errors.Is(err, ErrInvalidUpdate))
}

func TestValidateMovie_IgnoresUnknownFields(t *testing.T) {
	in := validMovieInput()
	in["id"] = json.Number("99")
	in["rating"] = "PG"

	movie, err := ValidateMovie(ModeCreate, in)
	require.NoError(t, err)
	assert.Zero(t, movie.ID)
}

func TestValidateUser(t *testing.T) {
	user, err := ValidateUser(ModeCreate, validUserInput())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	t.Run("email format is not checked", func(t *testing.T) {
		in := validUserInput()
		in["email"] = "not-an-email"
		_, err := ValidateUser(ModeCreate, in)
		assert.NoError(t, err)
	})

	for _, f := range userFields {
		t.Run("numeric "+f.name, func(t *testing.T) {
			in := validUserInput()
			in[f.name] = json.Number("1")

			_, err := ValidateUser(ModeCreate, in)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, []FieldError{{Field: f.name, Message: "must be a string"}}, verr.Fields)
		})
	}

	for _, f := range userFields {
		t.Run("missing "+f.name, func(t *testing.T) {
			in := validUserInput()
			delete(in, f.name)

			_, err := ValidateUser(ModeCreate, in)
			assert.True(t, errors.Is(err, ErrMissingField))

			_, err = ValidateUser(ModeUpdate, in)
			assert.True(t, errors.Is(err, ErrInvalidUpdate))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(ModeCreate)
	assert.Equal(t, ErrMissingField.Error(), err.Error())

	err = NewValidationError(ModeUpdate, FieldError{Field: "email", Message: "is required"})
	assert.Equal(t, "validation failed: invalid update: email is required", err.Error())
}
