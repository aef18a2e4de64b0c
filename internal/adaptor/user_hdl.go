package adaptor

import (
	"errors"
	"net/http"

	"seatsync/internal/data/repository"
	"seatsync/internal/usecase"
	"seatsync/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		h.log.Error("Failed to get users", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// GetUser handles GET /api/users/{user_id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "user_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ResponseNotFound(w, "User not found")
			return
		}
		h.log.Error("Failed to get user", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// GetBookingHistory handles GET /api/users/{user_id}/bookings
func (h *UserHandler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "user_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	history, err := h.service.GetBookingHistory(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get booking history", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}
