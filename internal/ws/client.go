package ws

import (
	"encoding/json"
	"time"

	"seatsync/internal/hold"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 64
)

// Client is one observer connection. The read pump feeds inbound
// requests into the hold registry; the write pump drains the send
// buffer filled by the hub.
type Client struct {
	id       string
	hub      *Hub
	registry *hold.Registry
	conn     *websocket.Conn
	send     chan []byte
	log      *zap.Logger
}

func NewClient(hub *Hub, registry *hold.Registry, conn *websocket.Conn, log *zap.Logger) *Client {
	id := uuid.NewString()
	return &Client{
		id:       id,
		hub:      hub,
		registry: registry,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		log:      log.With(zap.String("component", "ws_client"), zap.String("client_id", id)),
	}
}

// Serve registers the client with the hub and starts both pumps.
func (c *Client) Serve() {
	c.hub.register <- c
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("Unexpected close", zap.Error(err))
			}
			return
		}
		c.handleMessage(raw)
	}
}

// handleMessage dispatches one inbound payload. Malformed messages are
// logged and dropped; the connection stays open.
func (c *Client) handleMessage(raw []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.log.Warn("Dropping malformed message", zap.Error(err))
		return
	}

	if msg.Seat == "" || msg.ShowID == 0 {
		c.log.Warn("Dropping incomplete message",
			zap.String("action", msg.Action),
			zap.Int64("show_id", msg.ShowID),
		)
		return
	}

	switch msg.Action {
	case ActionBlock:
		c.registry.Hold(msg.ShowID, msg.Seat, msg.UserID)
	case ActionUnblock:
		c.registry.Release(msg.ShowID, msg.Seat, msg.UserID)
	default:
		c.log.Warn("Dropping message with unknown action", zap.String("action", msg.Action))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
