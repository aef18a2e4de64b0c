package usecase

import (
	"context"
	"fmt"

	"seatsync/internal/data/repository"
	"seatsync/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error)
	GetBookingHistory(ctx context.Context, userID int64) ([]response.BookingHistoryResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}
	return responses, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetBookingHistory(ctx context.Context, userID int64) ([]response.BookingHistoryResponse, error) {
	items, err := s.repo.User.FindBookingHistory(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get booking history",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("get booking history: %w", err)
	}

	responses := make([]response.BookingHistoryResponse, len(items))
	for i, item := range items {
		responses[i] = response.BookingHistoryToResponse(item)
	}
	return responses, nil
}
