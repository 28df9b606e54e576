// Package grading implements the Temporal activity that assigns letter grades
// to a batch of scores, together with the events it emits.
package grading

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahrav/go-gradebook/internal/domain"
	"github.com/ahrav/go-gradebook/internal/grader"
	pkgactivity "github.com/ahrav/go-gradebook/pkg/activity"
)

// heartbeatEvery is the number of scores graded between heartbeats.
const heartbeatEvery = 100

// LetterGrader is the grading capability the activity depends on.
type LetterGrader interface {
	DetermineLetterGrade(score int) (domain.LetterGrade, error)
}

// Activities handles grading-specific Temporal activities.
type Activities struct {
	pkgactivity.BaseActivities
	grader LetterGrader
	events *EventEmitter
}

// NewActivities creates grading activities. A nil grader uses the default scale.
func NewActivities(base pkgactivity.BaseActivities, g LetterGrader) *Activities {
	if g == nil {
		g = &grader.Grader{}
	}
	return &Activities{
		BaseActivities: base,
		grader:         g,
		events:         NewEventEmitter(base),
	}
}

// GradeScores grades every score in input order.
//
// The batch is all or nothing: the first negative score fails the activity with
// a non-retryable InvalidScore error and no results are returned. Events are
// emitted only after the whole batch succeeds.
func (a *Activities) GradeScores(
	ctx context.Context,
	input domain.GradeScoresInput,
) (*domain.GradeScoresOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, pkgactivity.NonRetryable(pkgactivity.ErrTypeValidation, err, "invalid grade scores input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	pkgactivity.SafeLog(ctx, "Starting GradeScores activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"scores", len(input.Scores),
		"request_id", input.RequestID)

	results := make([]domain.GradedScore, 0, len(input.Scores))
	for i, score := range input.Scores {
		grade, err := a.grader.DetermineLetterGrade(score)
		if err != nil {
			return nil, classify(err, i)
		}
		results = append(results, domain.GradedScore{Score: score, Grade: grade})

		if (i+1)%heartbeatEvery == 0 {
			a.RecordHeartbeat(ctx, i+1)
		}
	}

	output := &domain.GradeScoresOutput{Results: results}
	if err := output.Validate(); err != nil {
		return nil, pkgactivity.NonRetryable(pkgactivity.ErrTypeValidation, err, "invalid grade scores output")
	}

	a.events.EmitGradesAssigned(ctx, output.Results, input.RequestID, wfCtx)

	pkgactivity.SafeLog(ctx, "GradeScores completed",
		"workflow_id", wfCtx.WorkflowID,
		"graded", len(output.Results))

	return output, nil
}

// classify maps grader errors to Temporal application errors.
func classify(err error, index int) error {
	msg := fmt.Sprintf("score at index %d cannot be graded", index)
	if errors.Is(err, domain.ErrInvalidScore) {
		return pkgactivity.NonRetryable(pkgactivity.ErrTypeInvalidScore, err, msg)
	}
	return pkgactivity.NonRetryable(pkgactivity.ErrTypeValidation, err, msg)
}
