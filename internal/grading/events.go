package grading

import (
	"context"
	"fmt"

	"github.com/ahrav/go-gradebook/internal/domain"
	"github.com/ahrav/go-gradebook/pkg/activity"
	"github.com/ahrav/go-gradebook/pkg/events"
)

// EventEmitter handles domain event emission for grading operations.
// All emission is best-effort; failures are logged and never fail the activity.
type EventEmitter struct{ base activity.BaseActivities }

// NewEventEmitter creates a new EventEmitter with base activity infrastructure.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitGradesAssigned emits one GradeAssigned event per result, keyed by position.
// A non-empty requestID keys the events so resubmitting the same request
// from a new workflow deduplicates against the first submission.
func (e *EventEmitter) EmitGradesAssigned(
	ctx context.Context,
	results []domain.GradedScore,
	requestID string,
	wfCtx activity.WorkflowContext,
) {
	clientKey := eventClientKey(requestID, wfCtx)
	for i, r := range results {
		domainEvent, err := domain.NewGradeAssignedEvent(
			wfCtx.TenantID,
			wfCtx.WorkflowID,
			wfCtx.RunID,
			r,
			clientKey,
			i,
		)
		if err != nil {
			activity.SafeLogError(ctx, "Failed to create GradeAssigned event",
				"index", i,
				"error", err)
			continue
		}
		e.base.EmitEventSafe(ctx, convertDomainEventToEnvelope(domainEvent), "GradeAssigned")
	}
}

func eventClientKey(requestID string, wfCtx activity.WorkflowContext) string {
	if requestID != "" {
		return "request:" + requestID
	}
	return wfCtx.ClientKey()
}

// convertDomainEventToEnvelope converts a domain event to the transport envelope.
// The idempotency key doubles as the envelope ID so retries are deterministic.
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
