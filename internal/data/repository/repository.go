package repository

import (
	"seatsync/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Cinema     CinemaRepository
	Movie      MovieRepository
	Show       ShowRepository
	User       UserRepository
	Booking    BookingRepository
	BookedSeat BookedSeatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Cinema:     NewCinemaRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Show:       NewShowRepository(db, log),
		User:       NewUserRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		BookedSeat: NewBookedSeatRepository(db, log),
	}
}
