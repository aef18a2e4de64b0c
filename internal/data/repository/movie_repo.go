package repository

import (
	"context"
	"fmt"

	"seatsync/internal/data/entity"
	"seatsync/pkg/database"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FindByCinema(ctx context.Context, cinemaID int64) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindByCinema(ctx context.Context, cinemaID int64) ([]*entity.Movie, error) {
	query := `
		SELECT DISTINCT m.id, m.title, m.description, m.release_year
		FROM movies m
		JOIN shows s ON m.id = s.movie_id
		JOIN screens sc ON s.screen_id = sc.id
		WHERE sc.cinema_id = $1
		ORDER BY m.title
	`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to find movies by cinema",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("find movies for cinema %d: %w", cinemaID, err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.Description, &movie.ReleaseYear); err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed reading movie rows",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("read movie rows: %w", err)
	}

	return movies, nil
}
