package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/filmstore-api/internal/domain"
	"github.com/phrazzld/filmstore-api/internal/platform/sqlstore"
	"github.com/phrazzld/filmstore-api/internal/store"
)

var sampleMovies = []domain.Input{
	{"title": "Star Wars", "director": "George Lucas", "year": "1977", "color": "1", "duration": 121},
	{"title": "Casablanca", "director": "Michael Curtiz", "year": "1942", "color": "0", "duration": 102},
	{"title": "Alien", "director": "Ridley Scott", "year": "1979", "color": "1", "duration": 117},
	{"title": "Metropolis", "director": "Fritz Lang", "year": "1927", "color": "0", "duration": 153},
}

var sampleUsers = []domain.Input{
	{"firstname": "Ada", "lastname": "Lovelace", "city": "London", "language": "English"},
	{"firstname": "Alan", "lastname": "Turing", "city": "Manchester", "language": "English"},
	{"firstname": "Grace", "lastname": "Hopper", "city": "Arlington", "language": "English"},
}

// seedResult lists the ids of the inserted records.
type seedResult struct {
	MovieIDs []int64
	UserIDs  []int64
}

// seed inserts the sample records in one transaction. Sample users get a
// unique email so the loader can run repeatedly.
func seed(ctx context.Context, db *sql.DB, dialect sqlstore.Dialect, log *slog.Logger) (seedResult, error) {
	movies := sqlstore.NewMovieStore(db, dialect, log)
	users := sqlstore.NewUserStore(db, dialect, log)

	var result seedResult
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txMovies := movies.WithTx(tx)
		for _, in := range sampleMovies {
			m, err := domain.ValidateMovie(domain.ModeCreate, in)
			if err != nil {
				return fmt.Errorf("invalid sample movie: %w", err)
			}
			id, err := txMovies.Insert(ctx, &m)
			if err != nil {
				return err
			}
			result.MovieIDs = append(result.MovieIDs, id)
		}

		txUsers := users.WithTx(tx)
		for _, sample := range sampleUsers {
			in := domain.Input{"email": uniqueEmail(sample["firstname"])}
			for k, v := range sample {
				in[k] = v
			}
			u, err := domain.ValidateUser(domain.ModeCreate, in)
			if err != nil {
				return fmt.Errorf("invalid sample user: %w", err)
			}
			id, err := txUsers.Insert(ctx, &u)
			if err != nil {
				return err
			}
			result.UserIDs = append(result.UserIDs, id)
		}
		return nil
	})
	if err != nil {
		return seedResult{}, fmt.Errorf("failed to seed database: %w", err)
	}
	return result, nil
}

func uniqueEmail(name any) string {
	return fmt.Sprintf("%v+%s@example.com", name, uuid.NewString())
}
