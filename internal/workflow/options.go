package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	pkgactivity "github.com/ahrav/go-gradebook/pkg/activity"
)

// Registered activity names shared by the worker, the workflows and clients.
const (
	ActivityGradeScores = "GradeScores"
	ActivityAdd         = "Add"
)

// Registered workflow names.
const (
	WorkflowGrading  = "GradingWorkflow"
	WorkflowAddition = "AdditionWorkflow"
)

// DefaultTaskQueue is the task queue the worker polls unless configured otherwise.
const DefaultTaskQueue = "gradebook"

// withActivityOptions applies the standard timeouts and retry policy.
// Validation and invalid-score failures are never retried.
func withActivityOptions(ctx workflow.Context) workflow.Context {
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		HeartbeatTimeout:    10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
			NonRetryableErrorTypes: []string{
				pkgactivity.ErrTypeValidation,
				pkgactivity.ErrTypeInvalidScore,
			},
		},
	}
	return workflow.WithActivityOptions(ctx, ao)
}
