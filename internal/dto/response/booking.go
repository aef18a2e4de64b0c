package response

import (
	"time"

	"seatsync/internal/data/entity"
)

type BookingResponse struct {
	ID        string               `json:"id"`
	UserID    int64                `json:"user_id"`
	ShowID    int64                `json:"show_id"`
	Seats     []string             `json:"seats"`
	Status    entity.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type CancelBookingResponse struct {
	ID         string `json:"id"`
	FreedSeats int    `json:"freed_seats"`
}

type SeatAvailabilityResponse struct {
	ShowID      int64    `json:"show_id"`
	BookedSeats []string `json:"booked_seats"`
}
