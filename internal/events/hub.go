package events

import (
	"sync"
	"time"
)

// Event describes a change to one of the store's collections.
type Event struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

// Hub fans change events out to subscribers. Usecases publish after every
// mutating operation; UI clients subscribe (over SSE) to refresh their
// views. Publishing never blocks: a subscriber that falls behind its buffer
// misses events rather than stalling the mutation.
type Hub struct {
	mu     sync.Mutex
	subs   map[int64]chan Event
	nextID int64
	buffer int
}

// NewHub creates a hub with the given per-subscriber buffer size.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subs:   make(map[int64]chan Event),
		buffer: buffer,
	}
}

// Subscribe registers a new subscriber and returns its id and channel. The
// caller must Unsubscribe with the id when done; the channel is closed then.
func (h *Hub) Subscribe() (int64, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan Event, h.buffer)
	h.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Unsubscribing an
// unknown id is a no-op.
func (h *Hub) Unsubscribe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish delivers the event to every subscriber without blocking.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// NotifyChanged implements the change-notifier contract used by the
// usecases.
func (h *Hub) NotifyChanged(collection, id string) {
	h.Publish(Event{Collection: collection, ID: id, At: time.Now()})
}
