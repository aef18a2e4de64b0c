package wire

import (
	"seatsync/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - commit held seats into a durable booking
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// PUT /api/bookings/{id}/cancel - cancel a booking, freeing its seats
	r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

	// GET /api/shows/{show_id}/seats - durably booked seats for a show
	r.Get("/api/shows/{show_id}/seats", bookingHandler.GetSeatAvailability)
}
