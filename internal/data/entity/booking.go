package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	UserID int64         `db:"user_id"`
	ShowID int64         `db:"show_id"`
	Status BookingStatus `db:"status"`
}

// BookingHistoryItem is one row of a user's booking history, joined
// across shows, movies and cinemas with the seat labels aggregated.
type BookingHistoryItem struct {
	BookingID  uuid.UUID
	Seats      string
	Status     BookingStatus
	MovieTitle string
	CinemaName string
	StartTime  time.Time
}
