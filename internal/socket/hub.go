package socket

import (
	"context"
	"encoding/json"

	"duoChat/internal/logger"

	"go.uber.org/zap"
)

// Hub owns the set of open connections, including anonymous ones. All
// mutations go through Run.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

// Run processes hub traffic until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.close()
				delete(h.clients, client)
			}
			logger.Info("socket hub stopped")
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			logger.Debug("socket registered", zap.String("user_id", client.UserID), zap.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
				logger.Debug("socket unregistered", zap.String("user_id", client.UserID), zap.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				if err := client.enqueue(message); err != nil {
					logger.Warn("dropping broadcast frame", zap.String("user_id", client.UserID), zap.Error(err))
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
		client.close()
	}
}

// Broadcast queues event for every open connection. It returns once the hub
// has accepted the frame, so successive calls keep their order.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		logger.Error("encode broadcast", zap.String("event", event), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}
