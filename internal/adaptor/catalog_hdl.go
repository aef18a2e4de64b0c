package adaptor

import (
	"net/http"

	"seatsync/internal/usecase"
	"seatsync/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCinemas handles GET /api/cinemas
func (h *CatalogHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.GetCinemas(r.Context())
	if err != nil {
		h.log.Error("Failed to get cinemas", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// GetMovies handles GET /api/cinemas/{cinema_id}/movies
func (h *CatalogHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	cinemaID, err := utils.ParseID(chi.URLParam(r, "cinema_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid cinema ID", nil)
		return
	}

	movies, err := h.service.GetMoviesByCinema(r.Context(), cinemaID)
	if err != nil {
		h.log.Error("Failed to get movies", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetShows handles GET /api/cinemas/{cinema_id}/movies/{movie_id}/shows
func (h *CatalogHandler) GetShows(w http.ResponseWriter, r *http.Request) {
	cinemaID, err := utils.ParseID(chi.URLParam(r, "cinema_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid cinema ID", nil)
		return
	}

	movieID, err := utils.ParseID(chi.URLParam(r, "movie_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	shows, err := h.service.GetShows(r.Context(), cinemaID, movieID)
	if err != nil {
		h.log.Error("Failed to get shows", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}
