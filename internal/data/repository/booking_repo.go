package repository

import (
	"context"
	"errors"
	"fmt"

	"seatsync/internal/data/entity"
	"seatsync/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type BookingRepository interface {
	// CreateWithSeats inserts the booking and one booked seat row per
	// label inside a single transaction. All rows persist or none do.
	CreateWithSeats(ctx context.Context, booking *entity.Booking, seats []string) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// CancelWithSeats flips a confirmed booking to cancelled and deletes
	// its seat rows in one transaction, returning the show and the freed
	// seat labels. A missing or already cancelled booking yields ErrNotFound.
	CancelWithSeats(ctx context.Context, id uuid.UUID) (int64, []string, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateWithSeats(ctx context.Context, booking *entity.Booking, seats []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (id, user_id, show_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ShowID,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", booking.UserID),
			zap.Int64("show_id", booking.ShowID),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	seatQuery := `
		INSERT INTO booked_seats (booking_id, show_id, seat_label, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, seat := range seats {
		_, err = tx.Exec(ctx, seatQuery, booking.ID, booking.ShowID, seat, booking.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				r.log.Warn("Seat already booked",
					zap.Int64("show_id", booking.ShowID),
					zap.String("seat", seat),
				)
				return fmt.Errorf("seat %s on show %d: %w", seat, booking.ShowID, ErrSeatConflict)
			}
			r.log.Error("Failed to create booked seat",
				zap.Error(err),
				zap.Int64("show_id", booking.ShowID),
				zap.String("seat", seat),
			)
			return fmt.Errorf("create booked seat %s: %w", seat, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, show_id, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) CancelWithSeats(ctx context.Context, id uuid.UUID) (int64, []string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	tag, err := tx.Exec(ctx, query, id, entity.BookingStatusCancelled, entity.BookingStatusConfirmed)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return 0, nil, fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	// Zero rows means the booking never existed or is already cancelled.
	if tag.RowsAffected() == 0 {
		return 0, nil, fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	rows, err := tx.Query(ctx,
		`DELETE FROM booked_seats WHERE booking_id = $1 RETURNING show_id, seat_label`, id)
	if err != nil {
		r.log.Error("Failed to delete booked seats",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return 0, nil, fmt.Errorf("delete booked seats for %s: %w", id.String(), err)
	}

	var showID int64
	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&showID, &seat); err != nil {
			rows.Close()
			return 0, nil, fmt.Errorf("scan freed seat row: %w", err)
		}
		seats = append(seats, seat)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("read freed seat rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, fmt.Errorf("commit cancel %s: %w", id.String(), err)
	}

	r.log.Info("Booking cancelled",
		zap.String("booking_id", id.String()),
		zap.Int64("show_id", showID),
		zap.Int("freed_seats", len(seats)),
	)

	return showID, seats, nil
}
