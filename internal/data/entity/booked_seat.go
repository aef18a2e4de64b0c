package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookedSeat is the durable ground truth that a seat is taken for a
// show. The (show_id, seat_label) pair is unique while the owning
// booking stays confirmed.
type BookedSeat struct {
	ID        int64     `db:"id"`
	BookingID uuid.UUID `db:"booking_id"`
	ShowID    int64     `db:"show_id"`
	SeatLabel string    `db:"seat_label"`
	CreatedAt time.Time `db:"created_at"`
}
