package repository

import (
	"context"
	"fmt"

	"seatsync/internal/data/entity"
	"seatsync/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindBookingHistory returns the user's bookings joined with show,
	// movie and cinema details, seat labels aggregated per booking.
	FindBookingHistory(ctx context.Context, userID int64) ([]*entity.BookingHistoryItem, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT id, username FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed reading user rows", zap.Error(err))
		return nil, fmt.Errorf("read user rows: %w", err)
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, username FROM users WHERE id = $1`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) FindBookingHistory(ctx context.Context, userID int64) ([]*entity.BookingHistoryItem, error) {
	query := `
		SELECT
			b.id,
			COALESCE(string_agg(bs.seat_label, ', ' ORDER BY bs.seat_label), '') AS seats,
			b.status,
			m.title,
			c.name,
			s.start_time
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN screens sc ON s.screen_id = sc.id
		JOIN cinemas c ON sc.cinema_id = c.id
		LEFT JOIN booked_seats bs ON bs.booking_id = b.id
		WHERE b.user_id = $1
		GROUP BY b.id, b.status, m.title, c.name, s.start_time
		ORDER BY s.start_time DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find booking history",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find booking history for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []*entity.BookingHistoryItem
	for rows.Next() {
		var item entity.BookingHistoryItem
		err := rows.Scan(
			&item.BookingID,
			&item.Seats,
			&item.Status,
			&item.MovieTitle,
			&item.CinemaName,
			&item.StartTime,
		)
		if err != nil {
			r.log.Error("Failed to scan booking history row", zap.Error(err))
			return nil, fmt.Errorf("scan booking history row: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed reading booking history rows",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("read booking history rows: %w", err)
	}

	return items, nil
}
