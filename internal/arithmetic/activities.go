// Package arithmetic implements the Temporal activity that adds two integers.
package arithmetic

import (
	"context"

	"github.com/ahrav/go-gradebook/internal/calculator"
	"github.com/ahrav/go-gradebook/internal/domain"
	pkgactivity "github.com/ahrav/go-gradebook/pkg/activity"
)

// Activities handles arithmetic Temporal activities.
type Activities struct {
	pkgactivity.BaseActivities
	calc   calculator.SimpleCalculator
	events *EventEmitter
}

// NewActivities creates arithmetic activities.
func NewActivities(base pkgactivity.BaseActivities) *Activities {
	return &Activities{
		BaseActivities: base,
		events:         NewEventEmitter(base),
	}
}

// Add returns the sum of the operands and emits a SumComputed event.
// Every pair of integers is valid input, so Add never fails.
func (a *Activities) Add(ctx context.Context, input domain.AddInput) (*domain.AddOutput, error) {
	out := &domain.AddOutput{Sum: a.calc.Add(input.A, input.B)}

	wfCtx := a.GetWorkflowContext(ctx)
	a.events.EmitSumComputed(ctx, input, *out, wfCtx)

	pkgactivity.SafeLog(ctx, "Add completed",
		"workflow_id", wfCtx.WorkflowID,
		"a", input.A,
		"b", input.B,
		"sum", out.Sum)

	return out, nil
}
