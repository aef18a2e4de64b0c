package adaptor

import (
	"seatsync/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		User:    NewUserHandler(service.User, log),
	}
}
