package events

import (
	"context"
	"slices"
	"sync"
)

// MemoryEventSink keeps appended events in process memory.
// It is safe for concurrent use and deduplicates on IdempotencyKey.
type MemoryEventSink struct {
	mu     sync.Mutex
	events []Envelope
	seen   map[string]struct{}
}

// NewMemoryEventSink creates an empty in-memory sink.
func NewMemoryEventSink() *MemoryEventSink {
	return &MemoryEventSink{seen: make(map[string]struct{})}
}

// Append stores envelope unless an event with the same idempotency key was already stored.
// Envelopes without an idempotency key are always stored.
func (m *MemoryEventSink) Append(ctx context.Context, envelope Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if key := envelope.IdempotencyKey; key != "" {
		if _, dup := m.seen[key]; dup {
			return nil
		}
		m.seen[key] = struct{}{}
	}
	m.events = append(m.events, envelope)
	return nil
}

// Events returns a snapshot of the stored events in append order.
func (m *MemoryEventSink) Events() []Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.events)
}

// Len returns the number of stored events.
func (m *MemoryEventSink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}
