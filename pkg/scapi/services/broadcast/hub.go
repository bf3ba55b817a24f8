package broadcast

import (
	"context"
	"sync"

	"github.com/quatton/scitech/pkg/scapi/schemas"
)

// DefaultBuffer is the per-subscriber queue length used by the transports.
const DefaultBuffer = 64

// Hub fans events out to in-process subscribers. Delivery is best effort: a
// subscriber whose buffer is full misses that event, and nothing is replayed
// to late joiners.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*Subscription
	closed bool

	// OnDrop, when set, is called for every event dropped on a full buffer.
	OnDrop func(m schemas.Machine)
	// OnCountChange, when set, receives the subscriber count after each change.
	OnCountChange func(n int)
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]*Subscription)}
}

// Subscription is one observer's view of the hub.
type Subscription struct {
	C <-chan schemas.Machine

	hub  *Hub
	id   uint64
	ch   chan schemas.Machine
	once sync.Once
}

// Subscribe registers an observer with a queue of the given length.
func (h *Hub) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	h.mu.Lock()
	h.nextID++
	ch := make(chan schemas.Machine, buffer)
	sub := &Subscription{C: ch, hub: h, id: h.nextID, ch: ch}
	if h.closed {
		h.mu.Unlock()
		sub.once.Do(func() { close(ch) })
		return sub
	}
	h.subs[sub.id] = sub
	n := len(h.subs)
	h.mu.Unlock()

	if h.OnCountChange != nil {
		h.OnCountChange(n)
	}
	return sub
}

// Close unregisters the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		h := s.hub
		h.mu.Lock()
		delete(h.subs, s.id)
		close(s.ch)
		n := len(h.subs)
		h.mu.Unlock()

		if h.OnCountChange != nil {
			h.OnCountChange(n)
		}
	})
}

// Publish never blocks and never fails. Publishes are serialized so every
// subscriber sees events in publish order.
func (h *Hub) Publish(_ context.Context, m schemas.Machine) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case sub.ch <- m:
		default:
			if h.OnDrop != nil {
				h.OnDrop(m)
			}
		}
	}
	return nil
}

// Close ends every subscription, which lets the push handlers return, and
// makes later subscriptions start out closed. Called on server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

var _ Publisher = (*Hub)(nil)
