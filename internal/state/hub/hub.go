// Package hub fans committed state snapshots out to connected subscribers.
package hub

//go:generate go run go.uber.org/mock/mockgen -source=./hub.go -destination=./mocks/hub_mock.go -package=mocks

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tide/config"
)

// Broadcaster is the gateway-facing side of the hub.
type Broadcaster interface {
	Broadcast(payload []byte)
}

// Subscriber is one connected client. Its channel is closed on unsubscribe.
type Subscriber struct {
	ID string
	C  <-chan []byte
}

// Hub is a registry of subscriber channels. Delivery is per-subscriber and
// non-blocking: a subscriber that cannot drain its buffer loses frames while
// the rest keep receiving.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]chan []byte
	buffer int
}

func New(cfg *config.Config) *Hub {
	return &Hub{
		subs:   make(map[string]chan []byte),
		buffer: cfg.State.Hub.SendBuffer,
	}
}

// Subscribe registers a new subscriber and returns its handle.
func (h *Hub) Subscribe() Subscriber {
	ch := make(chan []byte, h.buffer)
	id := uuid.NewString()

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	log.Debug().Str("subscriber", id).Msg("[Hub] Subscriber connected")

	return Subscriber{ID: id, C: ch}
}

// Unsubscribe removes the subscriber and closes its channel. Safe to call
// more than once.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	ch, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	h.mu.Unlock()

	if ok {
		close(ch)
		log.Debug().Str("subscriber", id).Msg("[Hub] Subscriber disconnected")
	}
}

// Broadcast delivers the payload to every subscriber. Slow subscribers are
// skipped, never waited on.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- payload:
		default:
			log.Warn().Str("subscriber", id).Msg("[Hub] Subscriber buffer full, dropping frame")
		}
	}
}

// Len reports the number of connected subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}
