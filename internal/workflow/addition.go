package workflow

import (
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-gradebook/internal/domain"
)

// AdditionWorkflow returns the sum of in.A and in.B computed by the Add activity.
func AdditionWorkflow(ctx workflow.Context, in domain.AddInput) (*domain.AddOutput, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "addition.v", workflow.DefaultVersion, currentVersion)

	ctx = withActivityOptions(ctx)

	var out domain.AddOutput
	if err := workflow.ExecuteActivity(ctx, ActivityAdd, in).Get(ctx, &out); err != nil {
		workflow.GetLogger(ctx).Error("Add failed", "error", err)
		return nil, err
	}
	return &out, nil
}
