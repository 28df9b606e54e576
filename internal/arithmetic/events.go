package arithmetic

import (
	"context"
	"fmt"

	"github.com/ahrav/go-gradebook/internal/domain"
	"github.com/ahrav/go-gradebook/pkg/activity"
	"github.com/ahrav/go-gradebook/pkg/events"
)

// EventEmitter handles domain event emission for arithmetic operations.
type EventEmitter struct{ base activity.BaseActivities }

// NewEventEmitter creates a new EventEmitter with base activity infrastructure.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitSumComputed emits a SumComputed event. Best-effort.
func (e *EventEmitter) EmitSumComputed(
	ctx context.Context,
	in domain.AddInput,
	out domain.AddOutput,
	wfCtx activity.WorkflowContext,
) {
	domainEvent, err := domain.NewSumComputedEvent(
		wfCtx.TenantID,
		wfCtx.WorkflowID,
		wfCtx.RunID,
		in,
		out,
		wfCtx.ClientKey(),
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create SumComputed event", "error", err)
		return
	}
	e.base.EmitEventSafe(ctx, convertDomainEventToEnvelope(domainEvent), "SumComputed")
}

// convertDomainEventToEnvelope converts domain.EventEnvelope to pkg/events.Envelope.
func convertDomainEventToEnvelope(domainEvent domain.EventEnvelope) events.Envelope {
	return events.Envelope{
		ID:             domainEvent.IdempotencyKey,
		Type:           string(domainEvent.EventType),
		Source:         domainEvent.Producer,
		Version:        fmt.Sprintf("%d.0.0", domainEvent.Version),
		Timestamp:      domainEvent.OccurredAt,
		IdempotencyKey: domainEvent.IdempotencyKey,
		TenantID:       domainEvent.TenantID,
		WorkflowID:     domainEvent.WorkflowID,
		RunID:          domainEvent.RunID,
		Payload:        domainEvent.Payload,
	}
}
