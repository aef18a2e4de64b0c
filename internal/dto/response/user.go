package response

import (
	"time"

	"seatsync/internal/data/entity"
)

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type BookingHistoryResponse struct {
	BookingID  string               `json:"booking_id"`
	Seats      string               `json:"seats"`
	Status     entity.BookingStatus `json:"status"`
	MovieTitle string               `json:"movie_title"`
	CinemaName string               `json:"cinema_name"`
	StartTime  time.Time            `json:"start_time"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func BookingHistoryToResponse(item *entity.BookingHistoryItem) BookingHistoryResponse {
	return BookingHistoryResponse{
		BookingID:  item.BookingID.String(),
		Seats:      item.Seats,
		Status:     item.Status,
		MovieTitle: item.MovieTitle,
		CinemaName: item.CinemaName,
		StartTime:  item.StartTime,
	}
}
