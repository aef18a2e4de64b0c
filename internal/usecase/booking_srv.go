package usecase

import (
	"context"
	"fmt"
	"time"

	"seatsync/internal/data/entity"
	"seatsync/internal/data/repository"
	"seatsync/internal/dto/request"
	"seatsync/internal/dto/response"
	"seatsync/internal/hold"
	"seatsync/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatNotifier publishes the seat transitions produced by the commit
// and cancel paths. *ws.Hub satisfies it.
type SeatNotifier interface {
	SeatBooked(showID int64, seat string, userID int64)
	SeatAvailable(showID int64, seat string)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.CancelBookingResponse, error)
	GetBookedSeats(ctx context.Context, showID int64) (*response.SeatAvailabilityResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	registry *hold.Registry
	notifier SeatNotifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, registry *hold.Registry, notifier SeatNotifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		registry: registry,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

// CreateBooking converts a set of desired seats into a durable booking.
// Holds are advisory: a commit is refused up front when another user is
// holding one of the seats, but the unique constraint in the store
// remains the final arbiter against racing commits.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	for _, seat := range req.Seats {
		if holder, ok := s.registry.HeldBy(req.ShowID, seat); ok && holder != req.UserID {
			s.log.Warn("Commit refused, seat held by another user",
				zap.Int64("show_id", req.ShowID),
				zap.String("seat", seat),
				zap.Int64("user_id", req.UserID),
				zap.Int64("holder_id", holder),
			)
			return nil, fmt.Errorf("seat %s on show %d held by another user: %w",
				seat, req.ShowID, repository.ErrSeatConflict)
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: req.UserID,
		ShowID: req.ShowID,
		Status: entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.CreateWithSeats(ctx, booking, req.Seats); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.Int64("show_id", req.ShowID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// The holds served their purpose; drop them and tell every observer
	// the seats are now durably taken.
	s.registry.Clear(req.ShowID, req.Seats)
	for _, seat := range req.Seats {
		s.notifier.SeatBooked(req.ShowID, seat, req.UserID)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.Int64("user_id", req.UserID),
		zap.Int64("show_id", req.ShowID),
		zap.Int("seat_count", len(req.Seats)),
	)

	return &response.BookingResponse{
		ID:        booking.ID.String(),
		UserID:    booking.UserID,
		ShowID:    booking.ShowID,
		Seats:     req.Seats,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
	}, nil
}

// CancelBooking flips a confirmed booking to cancelled, frees its seat
// rows and announces the seats as available again. Cancelling an
// unknown or already cancelled booking reports not found.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.CancelBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidID, bookingID, err)
	}

	showID, freed, err := s.repo.Booking.CancelWithSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	for _, seat := range freed {
		s.notifier.SeatAvailable(showID, seat)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.Int64("show_id", showID),
		zap.Int("freed_seats", len(freed)),
	)

	return &response.CancelBookingResponse{
		ID:         bookingID,
		FreedSeats: len(freed),
	}, nil
}

// GetBookedSeats returns the durably booked seat labels for a show.
// In-memory holds are deliberately excluded; clients track those
// through the realtime channel.
func (s *bookingService) GetBookedSeats(ctx context.Context, showID int64) (*response.SeatAvailabilityResponse, error) {
	seats, err := s.repo.BookedSeat.ListByShow(ctx, showID)
	if err != nil {
		s.log.Error("Failed to list booked seats",
			zap.Error(err),
			zap.Int64("show_id", showID),
		)
		return nil, fmt.Errorf("get booked seats: %w", err)
	}

	if seats == nil {
		seats = []string{}
	}

	return &response.SeatAvailabilityResponse{
		ShowID:      showID,
		BookedSeats: seats,
	}, nil
}
