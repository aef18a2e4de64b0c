package repository

import (
	"context"
	"fmt"

	"seatsync/internal/data/entity"
	"seatsync/pkg/database"

	"go.uber.org/zap"
)

type ShowRepository interface {
	FindByCinemaAndMovie(ctx context.Context, cinemaID, movieID int64) ([]*entity.ShowListing, error)
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) FindByCinemaAndMovie(ctx context.Context, cinemaID, movieID int64) ([]*entity.ShowListing, error) {
	query := `
		SELECT s.id, s.start_time, sc.name AS screen_name
		FROM shows s
		JOIN screens sc ON s.screen_id = sc.id
		WHERE sc.cinema_id = $1 AND s.movie_id = $2
		ORDER BY s.start_time
	`

	rows, err := r.db.Query(ctx, query, cinemaID, movieID)
	if err != nil {
		r.log.Error("Failed to find shows",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find shows for cinema %d movie %d: %w", cinemaID, movieID, err)
	}
	defer rows.Close()

	var shows []*entity.ShowListing
	for rows.Next() {
		var show entity.ShowListing
		if err := rows.Scan(&show.ID, &show.StartTime, &show.ScreenName); err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed reading show rows",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("read show rows: %w", err)
	}

	return shows, nil
}
