package workflow

import (
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-gradebook/internal/domain"
	pkgactivity "github.com/ahrav/go-gradebook/pkg/activity"
)

// GradingWorkflow grades req.Scores and returns a report with per-score results
// and the grade distribution. A negative score fails the workflow with the
// activity's non-retryable InvalidScore error; no partial report is returned.
func GradingWorkflow(ctx workflow.Context, req domain.GradeRequest) (*domain.GradeReport, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "grading.v", workflow.DefaultVersion, currentVersion)

	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid grade request",
			pkgactivity.ErrTypeValidation,
			err,
		)
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("GradingWorkflow started", "scores", len(req.Scores), "request_id", req.RequestID)

	ctx = withActivityOptions(ctx)

	var out domain.GradeScoresOutput
	err := workflow.ExecuteActivity(ctx, ActivityGradeScores, domain.GradeScoresInput{
		Scores:    req.Scores,
		RequestID: req.RequestID,
	}).
		Get(ctx, &out)
	if err != nil {
		logger.Error("GradeScores failed", "error", err)
		return nil, err
	}

	report := domain.NewGradeReport(out.Results)
	logger.Info("GradingWorkflow completed", "graded", report.Count)
	return &report, nil
}
