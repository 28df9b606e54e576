// Package events provides the generic event infrastructure for domain event emission.
// It defines the Envelope type for wrapping domain events with consistent metadata,
// the EventSink interface for event storage or transmission, and the sinks the
// gradebook worker can be configured with.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Envelope wraps domain events with consistent metadata for reliable event processing.
type Envelope struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the event for routing and processing.
	// Examples: "grading.grade_assigned", "arithmetic.sum_computed"
	Type string `json:"type"`

	// Source identifies the component that emitted this event.
	Source string `json:"source"`

	// Version follows semantic versioning of the payload schema.
	Version string `json:"version"`

	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey ensures exactly-once processing during retries.
	// Sinks treat a repeated key as a no-op.
	IdempotencyKey string `json:"idempotency_key"`

	TenantID   string `json:"tenant_id"`
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`

	// Payload contains the domain-specific event data as JSON.
	Payload json.RawMessage `json:"payload"`
}

// EventSink defines the interface for emitting events to downstream consumers.
type EventSink interface {
	// Append adds an event to the sink with best-effort delivery.
	// Duplicate idempotency keys are no-ops. Callers should not fail their
	// primary operation due to sink failures.
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink is a null implementation of EventSink for when events are disabled.
type NoOpEventSink struct{}

// Append implements EventSink.Append with no-op behavior.
func (n *NoOpEventSink) Append(_ context.Context, _ Envelope) error {
	return nil
}

// NewNoOpEventSink creates a new no-op event sink.
func NewNoOpEventSink() EventSink {
	return &NoOpEventSink{}
}
