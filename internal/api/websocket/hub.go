package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/Beenod004/Networkfault/internal/pkg/metrics"
)

type envelope struct {
	msgType string
	data    []byte
}

// Hub maintains active WebSocket connections and broadcasts change messages
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound change messages
	broadcast chan envelope

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu  sync.RWMutex
	log *slog.Logger

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates a new WebSocket hub
func NewHub(ctx context.Context, log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	hubCtx, cancel := context.WithCancel(ctx)
	return &Hub{
		broadcast:  make(chan envelope, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		log:        log,
		ctx:        hubCtx,
		cancel:     cancel,
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			n := len(h.clients)
			h.mu.Unlock()
			metrics.WebSocketConnectionsActive.Set(float64(n))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			metrics.WebSocketConnectionsActive.Set(float64(n))

		case env := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if !client.wants(env.msgType) {
					continue
				}
				select {
				case client.send <- env.data:
				default:
					// Client buffer full, close connection
					close(client.send)
					delete(h.clients, client)
					h.log.Warn("dropping slow websocket client", "client_id", client.id)
				}
			}
			n := len(h.clients)
			h.mu.Unlock()
			metrics.WebSocketConnectionsActive.Set(float64(n))
		}
	}
}

// Stop stops the hub
func (h *Hub) Stop() {
	h.cancel()
	h.mu.Lock()
	defer h.mu.Unlock()

	// Close all client connections
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	metrics.WebSocketConnectionsActive.Set(0)
}

// Notify queues a change message for every subscribed client. It never
// blocks the caller; messages are dropped when the queue is full.
func (h *Hub) Notify(msg models.WebSocketMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("marshal websocket message", "type", msg.Type, "error", err)
		return
	}
	select {
	case h.broadcast <- envelope{msgType: msg.Type, data: data}:
	case <-h.ctx.Done():
	default:
		h.log.Warn("websocket broadcast queue full, dropping message", "type", msg.Type, "revision", msg.Revision)
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
