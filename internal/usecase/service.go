package usecase

import (
	"seatsync/internal/data/repository"
	"seatsync/internal/hold"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Catalog CatalogService
	User    UserService
}

func NewService(repo *repository.Repository, registry *hold.Registry, notifier SeatNotifier, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, registry, notifier, log),
		Catalog: NewCatalogService(repo, log),
		User:    NewUserService(repo, log),
	}
}
