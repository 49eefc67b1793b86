package websocket

import (
	"context"
	"sync"

	"stock-visibility-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// redisChannel carries dashboard broadcasts between instances.
const redisChannel = "dashboard_events"

// Hub fans notifications out to every connected admin dashboard. There is no
// per-user routing; every dashboard sees every store event.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis pub/sub relays broadcasts to other instances
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard connected", map[string]interface{}{"connections": h.connectionCount()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard disconnected", map[string]interface{}{"connections": h.connectionCount()})
		}
	}
}

// Broadcast sends a serialized notification to every connected dashboard.
// With Redis available, the message goes through pub/sub so every instance
// (this one included) delivers it; without Redis, delivery is local only.
// It implements the notification delivery contract.
func (h *Hub) Broadcast(message []byte) {
	if h.rdb != nil {
		h.rdb.Publish(context.Background(), redisChannel, message)
		return
	}
	h.sendLocal(message)
}

func (h *Hub) sendLocal(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- message:
		default:
			// Slow consumer; drop the connection rather than block the hub
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.sendLocal([]byte(msg.Payload))
	}
}

func (h *Hub) connectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
