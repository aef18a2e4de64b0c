package adaptor

import (
	"net/http"

	"seatsync/internal/hold"
	"seatsync/internal/ws"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WSHandler struct {
	hub      *ws.Hub
	registry *hold.Registry
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewWSHandler(hub *ws.Hub, registry *hold.Registry, log *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:      hub,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from arbitrary origins, same as
			// the permissive CORS policy on the REST surface.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With(zap.String("handler", "ws")),
	}
}

// Serve handles GET /ws and hands the connection to the hub.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	ws.NewClient(h.hub, h.registry, conn, h.log).Serve()
}
