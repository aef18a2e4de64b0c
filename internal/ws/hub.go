// Package ws is the realtime notification layer: a hub that fans every
// accepted seat transition out to all connected observers, and the
// client glue that feeds inbound block/unblock requests into the hold
// registry. Delivery is best-effort, at most once per connection, with
// no replay; an observer that disconnects simply misses events until
// it reconnects.
package ws

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan SeatEvent
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan SeatEvent, 256),
		log:        log.With(zap.String("component", "ws_hub")),
	}
}

// Run owns the client set. Everything goes through its channels, so
// events reach every observer in the order they were accepted.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("Observer connected",
				zap.String("client_id", client.id),
				zap.Int("observers", len(h.clients)),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("Observer disconnected",
					zap.String("client_id", client.id),
					zap.Int("observers", len(h.clients)),
				)
			}

		case event := <-h.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				h.log.Error("Failed to marshal seat event", zap.Error(err))
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Slow consumer, drop the connection.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast queues one event for delivery to every connected observer.
func (h *Hub) Broadcast(event SeatEvent) {
	h.broadcast <- event
}

// SeatBlocked implements hold.Notifier.
func (h *Hub) SeatBlocked(showID int64, seat string, userID int64) {
	h.Broadcast(SeatEvent{ShowID: showID, Seat: seat, UserID: &userID, Status: StatusBlocked})
}

// SeatAvailable implements hold.Notifier.
func (h *Hub) SeatAvailable(showID int64, seat string) {
	h.Broadcast(SeatEvent{ShowID: showID, Seat: seat, Status: StatusAvailable})
}

// SeatBooked announces a durably committed seat.
func (h *Hub) SeatBooked(showID int64, seat string, userID int64) {
	h.Broadcast(SeatEvent{ShowID: showID, Seat: seat, UserID: &userID, Status: StatusBooked})
}
