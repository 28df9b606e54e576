// Package worker exposes helpers to register workflows and activities with a Temporal worker.
package worker

import (
	"go.temporal.io/sdk/activity"
	sdkworker "go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-gradebook/internal/arithmetic"
	"github.com/ahrav/go-gradebook/internal/grading"
	gbworkflow "github.com/ahrav/go-gradebook/internal/workflow"
	pkgactivity "github.com/ahrav/go-gradebook/pkg/activity"
	"github.com/ahrav/go-gradebook/pkg/events"
)

// Registry is the subset of a Temporal worker used for registration.
// Both sdkworker.Worker and the testsuite environments satisfy it.
type Registry interface {
	RegisterWorkflowWithOptions(w any, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a any, options activity.RegisterOptions)
}

var _ Registry = (sdkworker.Worker)(nil)

// Dependencies are the collaborators shared by all activities.
type Dependencies struct {
	Grader    grading.LetterGrader
	EventSink events.EventSink
}

// RegisterAll registers all workflows and activities under their published names.
// It must be called once during worker initialization, before the worker starts.
func RegisterAll(r Registry, deps Dependencies) {
	base := pkgactivity.NewBaseActivities(deps.EventSink)

	gradingActivities := grading.NewActivities(base, deps.Grader)
	arithmeticActivities := arithmetic.NewActivities(base)

	r.RegisterWorkflowWithOptions(gbworkflow.GradingWorkflow,
		workflow.RegisterOptions{Name: gbworkflow.WorkflowGrading})
	r.RegisterWorkflowWithOptions(gbworkflow.AdditionWorkflow,
		workflow.RegisterOptions{Name: gbworkflow.WorkflowAddition})

	r.RegisterActivityWithOptions(gradingActivities.GradeScores,
		activity.RegisterOptions{Name: gbworkflow.ActivityGradeScores})
	r.RegisterActivityWithOptions(arithmeticActivities.Add,
		activity.RegisterOptions{Name: gbworkflow.ActivityAdd})
}
