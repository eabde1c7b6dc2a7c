package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func starWars() domain.Input {
	return domain.Input{
		"title":    "Star Wars",
		"director": "George Lucas",
		"year":     "1977",
		"color":    "1",
		"duration": json.Number("120"),
	}
}

func starWarsMovie() domain.Movie {
	return domain.Movie{
		Title:    "Star Wars",
		Director: "George Lucas",
		Year:     "1977",
		Color:    "1",
		Duration: 120,
	}
}

func newTestMovieService(t *testing.T) (*ResourceService[domain.Movie], *MockRepository[domain.Movie]) {
	t.Helper()
	repo := &MockRepository[domain.Movie]{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	svc, err := NewMovieService(repo, nil)
	require.NoError(t, err)
	return svc, repo
}

func TestNewResourceService(t *testing.T) {
	repo := &MockRepository[domain.User]{}

	_, err := NewResourceService[domain.User]("user", nil, domain.ValidateUser, nil, nil)
	assert.Error(t, err)

	_, err = NewResourceService[domain.User]("user", repo, nil, nil, nil)
	assert.Error(t, err)

	svc, err := NewUserService(repo, nil)
	require.NoError(t, err)
	assert.Equal(t, "user", svc.Name())
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns records", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		movies := []domain.Movie{starWarsMovie()}
		repo.On("FindAll", ctx).Return(movies, nil)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, movies, got)
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		boom := errors.New("boom")
		repo.On("FindAll", ctx).Return(nil, boom)

		_, err := svc.List(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		m := starWarsMovie()
		m.ID = 4
		repo.On("FindByID", ctx, int64(4)).Return(&m, nil)

		got, err := svc.Get(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, &m, got)
	})

	t.Run("absent", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.On("FindByID", ctx, int64(4)).Return(nil, store.ErrMovieNotFound)

		_, err := svc.Get(ctx, "4")
		assert.ErrorIs(t, err, store.ErrMovieNotFound)
	})

	t.Run("generic not found is reported per entity", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.On("FindByID", ctx, int64(4)).Return(nil, store.ErrNotFound)

		_, err := svc.Get(ctx, "4")
		assert.ErrorIs(t, err, store.ErrMovieNotFound)
	})

	for _, raw := range []string{"abc", "", "1.5", "99999999999999999999", "+4", "04", "-0"} {
		t.Run("unparseable id "+raw, func(t *testing.T) {
			svc, _ := newTestMovieService(t)

			_, err := svc.Get(ctx, raw)
			assert.ErrorIs(t, err, store.ErrMovieNotFound)
		})
	}

	t.Run("storage failure is not a not-found", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		boom := errors.New("boom")
		repo.On("FindByID", ctx, int64(4)).Return(nil, boom)

		_, err := svc.Get(ctx, "4")
		assert.ErrorIs(t, err, boom)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload is inserted", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		want := starWarsMovie()
		repo.On("Insert", ctx, &want).Return(int64(12), nil)

		id, err := svc.Create(ctx, starWars())
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
	})

	t.Run("missing field never reaches storage", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		in := starWars()
		delete(in, "director")

		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrMissingField)
		assert.NotErrorIs(t, err, domain.ErrInvalidUpdate)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []domain.FieldError{{Field: "director", Message: "is required"}}, verr.Fields)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("nil body is a create defect", func(t *testing.T) {
		svc, _ := newTestMovieService(t)

		_, err := svc.Create(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		boom := errors.New("boom")
		repo.On("Insert", ctx, mock.Anything).Return(int64(0), boom)

		_, err := svc.Create(ctx, starWars())
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestReplace(t *testing.T) {
	ctx := context.Background()

	t.Run("existing record is replaced", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		want := starWarsMovie()
		repo.On("UpdateByID", ctx, int64(3), &want).Return(int64(1), nil)

		assert.NoError(t, svc.Replace(ctx, "3", starWars()))
	})

	t.Run("valid payload for absent record", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.On("UpdateByID", ctx, int64(0), mock.Anything).Return(int64(0), nil)

		err := svc.Replace(ctx, "0", starWars())
		assert.ErrorIs(t, err, store.ErrMovieNotFound)
	})

	t.Run("invalid payload is checked before the id", func(t *testing.T) {
		svc, repo := newTestMovieService(t)

		for _, raw := range []string{"1", "0", "-1", "abc"} {
			err := svc.Replace(ctx, raw, domain.Input{"title": "Harry Potter"})
			assert.ErrorIs(t, err, domain.ErrInvalidUpdate, raw)
			assert.False(t, store.IsNotFoundError(err), raw)
		}
		repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid payload with unparseable id", func(t *testing.T) {
		svc, _ := newTestMovieService(t)

		err := svc.Replace(ctx, "abc", starWars())
		assert.ErrorIs(t, err, store.ErrMovieNotFound)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		boom := errors.New("boom")
		repo.On("UpdateByID", ctx, int64(3), mock.Anything).Return(int64(0), boom)

		err := svc.Replace(ctx, "3", starWars())
		assert.ErrorIs(t, err, boom)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing record", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.On("DeleteByID", ctx, int64(8)).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(ctx, "8"))
	})

	t.Run("absent record", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.On("DeleteByID", ctx, int64(-1)).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(ctx, "-1"), store.ErrMovieNotFound)
	})

	t.Run("unparseable id", func(t *testing.T) {
		svc, _ := newTestMovieService(t)

		assert.ErrorIs(t, svc.Delete(ctx, "x"), store.ErrMovieNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		boom := errors.New("boom")
		repo.On("DeleteByID", ctx, int64(8)).Return(int64(0), boom)

		assert.ErrorIs(t, svc.Delete(ctx, "8"), boom)
	})
}

func TestUserServiceUsesUserRules(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository[domain.User]{}
	svc, err := NewUserService(repo, nil)
	require.NoError(t, err)

	err = svc.Replace(ctx, "1", domain.Input{"firstname": "Harry Potter"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ModeUpdate, verr.Mode)
	assert.Len(t, verr.Fields, 4)

	repo.On("DeleteByID", ctx, int64(2)).Return(int64(0), nil)
	err = svc.Delete(ctx, "2")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	repo.AssertExpectations(t)
}
