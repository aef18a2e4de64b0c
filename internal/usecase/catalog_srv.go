package usecase

import (
	"context"
	"fmt"

	"seatsync/internal/data/repository"
	"seatsync/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	GetCinemas(ctx context.Context) ([]response.CinemaResponse, error)
	GetMoviesByCinema(ctx context.Context, cinemaID int64) ([]response.MovieResponse, error)
	GetShows(ctx context.Context, cinemaID, movieID int64) ([]response.ShowResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetCinemas(ctx context.Context) ([]response.CinemaResponse, error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get cinemas", zap.Error(err))
		return nil, fmt.Errorf("get cinemas: %w", err)
	}

	responses := make([]response.CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		responses[i] = response.CinemaToResponse(cinema)
	}
	return responses, nil
}

func (s *catalogService) GetMoviesByCinema(ctx context.Context, cinemaID int64) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindByCinema(ctx, cinemaID)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	responses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = response.MovieToResponse(movie)
	}
	return responses, nil
}

func (s *catalogService) GetShows(ctx context.Context, cinemaID, movieID int64) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindByCinemaAndMovie(ctx, cinemaID, movieID)
	if err != nil {
		s.log.Error("Failed to get shows",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get shows: %w", err)
	}

	responses := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		responses[i] = response.ShowToResponse(show)
	}
	return responses, nil
}
