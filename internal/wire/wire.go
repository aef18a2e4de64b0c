package wire

import (
	"net/http"

	"seatsync/internal/adaptor"
	"seatsync/internal/data/repository"
	"seatsync/internal/hold"
	"seatsync/internal/usecase"
	"seatsync/internal/ws"
	"seatsync/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, registry *hold.Registry, hub *ws.Hub, logger *zap.Logger) *App {
	service := usecase.NewService(repo, registry, hub, logger)
	handler := adaptor.NewHandler(service, logger)
	wsHandler := adaptor.NewWSHandler(hub, registry, logger)

	router := setupRouter(handler, wsHandler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, wsHandler *adaptor.WSHandler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireBooking(r, handler.Booking)
	wireCatalog(r, handler.Catalog)
	wireUser(r, handler.User)

	// Realtime channel
	r.Get("/ws", wsHandler.Serve)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
