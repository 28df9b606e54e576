package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event emitted by the system.
type EventType string

const (
	// EventTypeGradeAssigned is emitted once per graded score.
	EventTypeGradeAssigned EventType = "grading.grade_assigned"

	// EventTypeSumComputed is emitted once per addition.
	EventTypeSumComputed EventType = "arithmetic.sum_computed"
)

// Event producers.
const (
	ProducerGradeScores = "activity.grade_scores"
	ProducerAdd         = "activity.add"
)

// EventEnvelope wraps domain events with the workflow context needed for
// idempotent delivery and correlation.
type EventEnvelope struct {
	// IdempotencyKey is derived deterministically so retries and replays
	// produce identical keys for the same logical event.
	IdempotencyKey string `json:"idempotency_key" validate:"required"`

	EventType EventType `json:"event_type" validate:"required"`

	// Version is bumped when the payload schema changes.
	Version int `json:"version" validate:"required,min=1"`

	OccurredAt time.Time `json:"occurred_at" validate:"required"`

	TenantID   string `json:"tenant_id"   validate:"required"`
	WorkflowID string `json:"workflow_id" validate:"required"`
	RunID      string `json:"run_id"      validate:"required"`

	Payload  json.RawMessage `json:"payload"  validate:"required"`
	Producer string          `json:"producer" validate:"required"`
}

// Validate checks if the event envelope meets all requirements.
func (e *EventEnvelope) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	return nil
}

// GradeAssignedPayload records a single grading decision.
type GradeAssignedPayload struct {
	Index int         `json:"index" validate:"min=0"`
	Score int         `json:"score" validate:"min=0"`
	Grade LetterGrade `json:"grade" validate:"required,oneof=A B C D F"`
}

// Validate checks if the payload meets all requirements.
func (p *GradeAssignedPayload) Validate() error {
	return validate.Struct(p)
}

// SumComputedPayload records a single addition.
type SumComputedPayload struct {
	A   int `json:"a"`
	B   int `json:"b"`
	Sum int `json:"sum"`
}

// NewEventEnvelope creates an EventEnvelope with required fields populated.
// OccurredAt is wall clock time; callers in workflows must not use this.
func NewEventEnvelope(
	eventType EventType,
	tenantID, workflowID, runID string,
	payload json.RawMessage,
	producer string,
) EventEnvelope {
	return EventEnvelope{
		EventType:  eventType,
		Version:    1,
		OccurredAt: time.Now(),
		TenantID:   tenantID,
		WorkflowID: workflowID,
		RunID:      runID,
		Payload:    payload,
		Producer:   producer,
	}
}

// GenerateIdempotencyKey creates a deterministic key for event deduplication:
// hex(sha256(clientKey || suffix)).
func GenerateIdempotencyKey(clientKey, suffix string) string {
	sum := sha256.Sum256([]byte(clientKey + suffix))
	return hex.EncodeToString(sum[:])
}

// GradeAssignedIdempotencyKey returns H(clientKey || ":grade:" || index).
func GradeAssignedIdempotencyKey(clientKey string, index int) string {
	return GenerateIdempotencyKey(clientKey, fmt.Sprintf(":grade:%d", index))
}

// SumComputedIdempotencyKey returns H(clientKey || ":add:" || a || ":" || b).
func SumComputedIdempotencyKey(clientKey string, a, b int) string {
	return GenerateIdempotencyKey(clientKey, fmt.Sprintf(":add:%d:%d", a, b))
}

// NewGradeAssignedEvent creates a GradeAssigned event envelope for the result at index.
func NewGradeAssignedEvent(
	tenantID, workflowID, runID string,
	result GradedScore,
	clientKey string,
	index int,
) (EventEnvelope, error) {
	payload := GradeAssignedPayload{Index: index, Score: result.Score, Grade: result.Grade}
	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("%w: grade assigned payload: %w", ErrInvalidEvent, err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := NewEventEnvelope(EventTypeGradeAssigned, tenantID, workflowID, runID,
		payloadJSON, ProducerGradeScores)
	envelope.IdempotencyKey = GradeAssignedIdempotencyKey(clientKey, index)

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, err
	}
	return envelope, nil
}

// NewSumComputedEvent creates a SumComputed event envelope.
func NewSumComputedEvent(
	tenantID, workflowID, runID string,
	in AddInput,
	out AddOutput,
	clientKey string,
) (EventEnvelope, error) {
	payloadJSON, err := json.Marshal(SumComputedPayload{A: in.A, B: in.B, Sum: out.Sum})
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := NewEventEnvelope(EventTypeSumComputed, tenantID, workflowID, runID,
		payloadJSON, ProducerAdd)
	envelope.IdempotencyKey = SumComputedIdempotencyKey(clientKey, in.A, in.B)

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, err
	}
	return envelope, nil
}
