package repository

import (
	"context"
	"fmt"

	"seatsync/pkg/database"

	"go.uber.org/zap"
)

type BookedSeatRepository interface {
	// ListByShow returns the seat labels durably booked for a show,
	// the ground truth of unavailable seats. In-memory holds are not
	// part of this view.
	ListByShow(ctx context.Context, showID int64) ([]string, error)
}

type bookedSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookedSeatRepository(db database.PgxIface, log *zap.Logger) BookedSeatRepository {
	return &bookedSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booked_seat")),
	}
}

func (r *bookedSeatRepository) ListByShow(ctx context.Context, showID int64) ([]string, error) {
	query := `
		SELECT seat_label
		FROM booked_seats
		WHERE show_id = $1
		ORDER BY seat_label
	`

	rows, err := r.db.Query(ctx, query, showID)
	if err != nil {
		r.log.Error("Failed to list booked seats",
			zap.Error(err),
			zap.Int64("show_id", showID),
		)
		return nil, fmt.Errorf("list booked seats for show %d: %w", showID, err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan booked seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booked seat row: %w", err)
		}
		seats = append(seats, seat)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed reading booked seat rows",
			zap.Error(err),
			zap.Int64("show_id", showID),
		)
		return nil, fmt.Errorf("read booked seat rows: %w", err)
	}

	return seats, nil
}
