package websocket

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Hub maintains the set of connected dashboard clients and broadcasts alert
// events to them
type Hub struct {
	clients map[string]*Client

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	// Broadcast carries messages fanned out to every connected client
	Broadcast chan []byte

	mu     sync.RWMutex
	logger *zap.Logger
}

// NewHub creates a new hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Run processes register/unregister/broadcast events until the hub's
// channels are closed. Run is meant to be started once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			// A reconnecting client replaces its previous connection
			if existing, ok := h.clients[client.ID]; ok {
				close(existing.send)
			}
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", zap.String("client_id", client.ID))

		case client := <-h.Unregister:
			h.mu.Lock()
			if existing, ok := h.clients[client.ID]; ok && existing == client {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("websocket client unregistered", zap.String("client_id", client.ID))

		case message := <-h.Broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the hub
					close(client.send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastJSON marshals v and queues it for broadcast
func (h *Hub) BroadcastJSON(v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast <- payload
	return nil
}

// GetClient returns the client registered under the given id
func (h *Hub) GetClient(id string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.clients[id]
	return client, ok
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
