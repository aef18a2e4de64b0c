package wire

import (
	"seatsync/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// GET /api/users - list users
	r.Get("/api/users", userHandler.GetUsers)

	// GET /api/users/{user_id} - user details
	r.Get("/api/users/{user_id}", userHandler.GetUser)

	// GET /api/users/{user_id}/bookings - booking history with seats
	r.Get("/api/users/{user_id}/bookings", userHandler.GetBookingHistory)
}
