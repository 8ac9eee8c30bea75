// Package realtime fans lifespan events out to connected websocket clients.
// Delivery is best-effort at-most-once: no acks, no retries, and a client
// that cannot keep up with its send buffer is dropped.
package realtime

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"go.uber.org/zap"
)

// Notifier is the capability handed to the write paths; mutation logic never
// sees the hub itself.
type Notifier interface {
	Notify(event string, payload any)
}

// Event is the wire envelope for both directions of the channel.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type message struct {
	sender *Client // nil for server-originated events
	data   []byte
}

type Hub struct {
	log *zap.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	done       chan struct{} // closed when Run returns

	clients map[*Client]bool
	count   atomic.Int64
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 64),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
	}
}

// Run owns the client set; membership and fan-out happen only on this
// goroutine.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.count.Add(1)
			h.log.Debug("client connected", zap.Int64("clients", h.count.Load()))
		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
			}
		case m := <-h.broadcast:
			for c := range h.clients {
				if c == m.sender {
					continue
				}
				select {
				case c.send <- m.data:
				default:
					// slow consumer, disconnect rather than block the hub
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.count.Add(-1)
}

// Notify delivers a server-originated event to every connected client.
func (h *Hub) Notify(event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("notify marshal", zap.String("event", event), zap.Error(err))
		return
	}
	raw, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		h.log.Error("notify marshal", zap.String("event", event), zap.Error(err))
		return
	}
	h.broadcast <- message{data: raw}
}

// relay re-broadcasts a client-originated event to everyone but the sender.
func (h *Hub) relay(sender *Client, raw []byte) {
	h.broadcast <- message{sender: sender, data: raw}
}

func (h *Hub) ClientCount() int { return int(h.count.Load()) }
