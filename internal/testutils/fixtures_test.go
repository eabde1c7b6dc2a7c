package testutils

import (
	"testing"

	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesAreValid(t *testing.T) {
	_, err := domain.ValidateMovie(domain.ModeCreate, MovieInput())
	require.NoError(t, err)

	_, err = domain.ValidateUser(domain.ModeCreate, UserInput())
	require.NoError(t, err)
}

func TestInputOptions(t *testing.T) {
	in := MovieInput(Without("title"), With("year", "1980"))

	assert.NotContains(t, in, "title")
	assert.Equal(t, "1980", in["year"])
	assert.Contains(t, MovieInput(), "title", "options must not leak between calls")
}

func TestUniqueEmail(t *testing.T) {
	assert.NotEqual(t, UserInput()["email"], UserInput()["email"])
}
