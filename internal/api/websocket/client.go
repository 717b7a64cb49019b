package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4 * 1024
)

// subscribeRequest narrows the message types a client receives. An empty
// list subscribes to everything.
type subscribeRequest struct {
	Subscribe []string `json:"subscribe"`
}

// Client represents a WebSocket client
type Client struct {
	// The websocket connection
	conn *websocket.Conn

	// Buffered channel of outbound messages
	send chan []byte

	// Hub reference
	hub *Hub

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc

	// Client ID for tracking
	id string

	mu    sync.RWMutex
	types map[string]bool
}

// NewClient creates a new WebSocket client
func NewClient(ctx context.Context, hub *Hub, conn *websocket.Conn, id string) *Client {
	clientCtx, cancel := context.WithCancel(ctx)
	return &Client{
		conn:   conn,
		send:   make(chan []byte, 256),
		hub:    hub,
		ctx:    clientCtx,
		cancel: cancel,
		id:     id,
	}
}

func (c *Client) wants(msgType string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types) == 0 || c.types[msgType]
}

// ReadPump reads subscription updates until the peer goes away, then
// unregisters the client.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.ctx.Done():
		}
		c.cancel()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	extend := func() error { return c.conn.SetReadDeadline(time.Now().Add(pongWait)) }
	_ = extend()
	c.conn.SetPongHandler(func(string) error { return extend() })

	for c.ctx.Err() == nil {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Warn("websocket read error", "client_id", c.id, "error", err)
			}
			return
		}
		c.handleMessage(message)
	}
}

// WritePump writes one JSON change message per frame and keeps the
// connection alive with pings.
func (c *Client) WritePump() {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return

		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.log.Debug("websocket write failed", "client_id", c.id, "error", err)
				return
			}

		case <-ping.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close closes the client connection
func (c *Client) Close() {
	c.cancel()
}

// handleMessage applies a subscription update; anything else is ignored.
func (c *Client) handleMessage(message []byte) {
	var req subscribeRequest
	if err := json.Unmarshal(message, &req); err != nil {
		c.hub.log.Debug("ignoring websocket message", "client_id", c.id, "error", err)
		return
	}
	types := make(map[string]bool, len(req.Subscribe))
	for _, t := range req.Subscribe {
		types[t] = true
	}
	c.mu.Lock()
	c.types = types
	c.mu.Unlock()
}
