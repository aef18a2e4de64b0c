package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"seatsync/internal/data/repository"
	"seatsync/internal/dto/request"
	"seatsync/internal/usecase"
	"seatsync/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	result, err := h.service.CancelBooking(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetSeatAvailability handles GET /api/shows/{show_id}/seats
func (h *BookingHandler) GetSeatAvailability(w http.ResponseWriter, r *http.Request) {
	showID, err := utils.ParseID(chi.URLParam(r, "show_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid show ID", nil)
		return
	}

	seats, err := h.service.GetBookedSeats(r.Context(), showID)
	if err != nil {
		h.handleServiceError(w, err, "get seat availability")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// handleServiceError maps service errors onto the response envelope.
// Only sentinel-tagged request errors ever echo their message; anything
// unrecognized is a generic 500 so storage internals never leak to
// clients.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Booking not found")

	case errors.Is(err, repository.ErrSeatConflict):
		h.log.Warn(operation+" failed - seat conflict", zap.Error(err))
		utils.ResponseConflict(w, "One or more seats are no longer available")

	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidID):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
