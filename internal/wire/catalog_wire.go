package wire

import (
	"seatsync/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/cinemas - list all cinemas
	r.Get("/api/cinemas", catalogHandler.GetCinemas)

	// GET /api/cinemas/{cinema_id}/movies - movies showing at a cinema
	r.Get("/api/cinemas/{cinema_id}/movies", catalogHandler.GetMovies)

	// GET /api/cinemas/{cinema_id}/movies/{movie_id}/shows - showtimes
	r.Get("/api/cinemas/{cinema_id}/movies/{movie_id}/shows", catalogHandler.GetShows)
}
