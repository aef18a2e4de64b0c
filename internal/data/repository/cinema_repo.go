package repository

import (
	"context"
	"fmt"

	"seatsync/internal/data/entity"
	"seatsync/pkg/database"

	"go.uber.org/zap"
)

type CinemaRepository interface {
	FindAll(ctx context.Context) ([]*entity.Cinema, error)
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) FindAll(ctx context.Context) ([]*entity.Cinema, error) {
	query := `
		SELECT id, name, address
		FROM cinemas
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find cinemas", zap.Error(err))
		return nil, fmt.Errorf("find cinemas: %w", err)
	}
	defer rows.Close()

	var cinemas []*entity.Cinema
	for rows.Next() {
		var cinema entity.Cinema
		if err := rows.Scan(&cinema.ID, &cinema.Name, &cinema.Address); err != nil {
			r.log.Error("Failed to scan cinema row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema row: %w", err)
		}
		cinemas = append(cinemas, &cinema)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed reading cinema rows", zap.Error(err))
		return nil, fmt.Errorf("read cinema rows: %w", err)
	}

	return cinemas, nil
}
