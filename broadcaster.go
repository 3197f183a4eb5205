package authstate

import (
	"sync"

	"github.com/google/uuid"
)

// Broadcaster publishes envelope transitions to interested consumers.
type Broadcaster interface {
	Publish(envelope Envelope)
}

// BroadcasterFunc adapts a function into a Broadcaster.
type BroadcasterFunc func(envelope Envelope)

// Publish satisfies the Broadcaster interface.
func (f BroadcasterFunc) Publish(envelope Envelope) {
	if f != nil {
		f(envelope)
	}
}

type noopBroadcaster struct{}

func (noopBroadcaster) Publish(Envelope) {}

func normalizeBroadcaster(b Broadcaster) Broadcaster {
	if b == nil {
		return noopBroadcaster{}
	}
	return b
}

// MemoryBroadcaster retains the most recently published envelope and fans it
// out to subscribers. Current and future consumers both observe the latest
// value; published envelopes are read-only from then on.
type MemoryBroadcaster struct {
	mu          sync.RWMutex
	current     Envelope
	subscribers map[string]chan Envelope
}

// NewMemoryBroadcaster returns a broadcaster holding an Idle envelope.
func NewMemoryBroadcaster() *MemoryBroadcaster {
	return &MemoryBroadcaster{
		current:     IdleEnvelope(),
		subscribers: map[string]chan Envelope{},
	}
}

// Publish replaces the current envelope and notifies subscribers. Slow
// subscribers have their stale value evicted so they always observe the
// latest envelope, matching last-write-wins semantics.
func (b *MemoryBroadcaster) Publish(envelope Envelope) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = envelope
	for _, ch := range b.subscribers {
		send(ch, envelope)
	}
}

// Current returns the latest published envelope.
func (b *MemoryBroadcaster) Current() Envelope {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Subscribe registers a consumer. The channel immediately carries the
// current envelope so late subscribers never miss the latest state. The
// returned cancel function releases the subscription.
func (b *MemoryBroadcaster) Subscribe() (<-chan Envelope, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	ch := make(chan Envelope, 1)
	send(ch, b.current)
	b.subscribers[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

func send(ch chan Envelope, envelope Envelope) {
	for {
		select {
		case ch <- envelope:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
