package response

import (
	"time"

	"seatsync/internal/data/entity"
)

type CinemaResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type MovieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`
}

type ShowResponse struct {
	ID         int64     `json:"id"`
	StartTime  time.Time `json:"start_time"`
	ScreenName string    `json:"screen_name"`
}

func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:      cinema.ID,
		Name:    cinema.Name,
		Address: cinema.Address,
	}
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseYear: movie.ReleaseYear,
	}
}

func ShowToResponse(show *entity.ShowListing) ShowResponse {
	return ShowResponse{
		ID:         show.ID,
		StartTime:  show.StartTime,
		ScreenName: show.ScreenName,
	}
}
