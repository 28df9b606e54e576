// Package activity provides common infrastructure for all Temporal activity implementations.
// It includes base types, context extraction, safe logging, event emission and error
// classification shared by the grading and arithmetic activity packages.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"

	"github.com/ahrav/go-gradebook/pkg/events"
)

// DefaultTenantID is used until workflow metadata carries a tenant.
const DefaultTenantID = "default"

// WorkflowContext contains metadata extracted from the Temporal activity context.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	TenantID   string
	ActivityID string
}

// ClientKey returns the stable prefix used to derive event idempotency keys.
// Retries of the same activity within one run produce the same key.
func (w WorkflowContext) ClientKey() string {
	return w.WorkflowID + ":" + w.RunID + ":" + w.ActivityID
}

// BaseActivities provides common infrastructure for all activity types.
// It works both in Temporal activity contexts and plain test contexts.
type BaseActivities struct {
	eventSink events.EventSink
}

// NewBaseActivities creates a new BaseActivities instance with the provided event sink.
// The event sink can be nil when event emission is not needed.
func NewBaseActivities(sink events.EventSink) BaseActivities {
	return BaseActivities{eventSink: sink}
}

// GetWorkflowContext safely extracts workflow context from the activity context.
// Outside an activity (where activity.GetInfo panics) it generates test IDs.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	var wfCtx WorkflowContext

	func() {
		defer func() {
			if r := recover(); r != nil {
				wfCtx.WorkflowID = "local-" + uuid.NewString()
				wfCtx.RunID = "local-run-" + uuid.NewString()[:8]
				wfCtx.TenantID = DefaultTenantID
				wfCtx.ActivityID = "local-activity"
			}
		}()

		info := activity.GetInfo(ctx)
		wfCtx.WorkflowID = info.WorkflowExecution.ID
		wfCtx.RunID = info.WorkflowExecution.RunID
		wfCtx.ActivityID = info.ActivityID
		wfCtx.TenantID = DefaultTenantID
	}()

	return wfCtx
}

// EmitEventSafe provides best-effort event emission with a short retry.
// Failures are logged and never propagated to the caller.
func (b *BaseActivities) EmitEventSafe(
	ctx context.Context,
	envelope events.Envelope,
	description string,
) {
	if b.eventSink == nil {
		return
	}

	const maxAttempts = 2
	const retryDelay = 200 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				SafeLogError(ctx, fmt.Sprintf("Event emission cancelled: %s", description),
					"event_type", envelope.Type)
				return
			}
		}

		if err := b.eventSink.Append(ctx, envelope); err != nil {
			lastErr = err
			continue
		}

		SafeLog(ctx, fmt.Sprintf("Event emitted: %s", description),
			"event_type", envelope.Type,
			"idempotency_key", envelope.IdempotencyKey)
		return
	}

	SafeLogError(ctx, fmt.Sprintf("Failed to emit %s after %d attempts", description, maxAttempts),
		"event_type", envelope.Type,
		"error", lastErr)
}

// RecordHeartbeat safely records a heartbeat in the Temporal activity context.
func (b *BaseActivities) RecordHeartbeat(ctx context.Context, details ...any) {
	RecordHeartbeat(ctx, details...)
}

// SafeLog logs at INFO through the activity logger, and is a no-op outside an activity.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		_ = recover()
	}()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogError is SafeLog at ERROR level.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		_ = recover()
	}()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}

// RecordHeartbeat safely records activity heartbeat with details.
func RecordHeartbeat(ctx context.Context, details ...any) {
	defer func() {
		_ = recover()
	}()
	activity.RecordHeartbeat(ctx, details...)
}
