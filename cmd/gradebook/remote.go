package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-gradebook/internal/domain"
	"github.com/ahrav/go-gradebook/internal/worker"
	gbworkflow "github.com/ahrav/go-gradebook/internal/workflow"
)

func (a *app) dial() (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:  a.cfg.Temporal.HostPort,
		Namespace: a.cfg.Temporal.Namespace,
		Logger:    tlog.NewStructuredLogger(a.logger),
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal %s: %w", a.cfg.Temporal.HostPort, err)
	}
	return c, nil
}

func newWorkerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the Temporal worker until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := worker.NewGrader(a.cfg)
			if err != nil {
				return err
			}

			sink, closeSink, err := worker.NewEventSink(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeSink(); err != nil {
					a.logger.Warn("closing event sink", "error", err)
				}
			}()

			c, err := a.dial()
			if err != nil {
				return err
			}
			defer c.Close()

			w := sdkworker.New(c, a.cfg.Temporal.TaskQueue, sdkworker.Options{})
			worker.RegisterAll(w, worker.Dependencies{Grader: g, EventSink: sink})

			a.logger.Info("worker starting",
				"host_port", a.cfg.Temporal.HostPort,
				"namespace", a.cfg.Temporal.Namespace,
				"task_queue", a.cfg.Temporal.TaskQueue,
				"event_sink", a.cfg.Events.Sink,
				"scale", g.Scale().Bands)

			if err := w.Run(sdkworker.InterruptCh()); err != nil {
				return fmt.Errorf("worker stopped: %w", err)
			}
			return nil
		},
	}
}

func newSubmitCmd(a *app) *cobra.Command {
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Run a workflow on the Temporal cluster and print its JSON result",
	}

	var requestID string
	gradeCmd := &cobra.Command{
		Use:   "grade <score>...",
		Short: "Run GradingWorkflow",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseInts(args)
			if err != nil {
				return err
			}
			var report domain.GradeReport
			req := domain.GradeRequest{Scores: scores, RequestID: requestID}
			if err := a.execute(cmd, workflowID("grading-", requestID), gbworkflow.WorkflowGrading, req, &report); err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	gradeCmd.Flags().StringVar(&requestID, "request-id", "", "client idempotency key")

	addCmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Run AdditionWorkflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseInts(args)
			if err != nil {
				return err
			}
			var out domain.AddOutput
			in := domain.AddInput{A: ops[0], B: ops[1]}
			if err := a.execute(cmd, workflowID("addition-", ""), gbworkflow.WorkflowAddition, in, &out); err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}

	submit.AddCommand(gradeCmd, addCmd)
	return submit
}

// workflowID names a workflow execution. A request ID makes the name
// deterministic so a resubmitted request attaches to the same execution.
func workflowID(prefix, requestID string) string {
	if requestID != "" {
		return prefix + requestID
	}
	return prefix + uuid.NewString()
}

// execute starts workflowName with input and blocks until result is populated.
func (a *app) execute(cmd *cobra.Command, id, workflowName string, input, result any) error {
	c, err := a.dial()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := cmd.Context()
	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        id,
		TaskQueue: a.cfg.Temporal.TaskQueue,
	}, workflowName, input)
	if err != nil {
		return fmt.Errorf("start %s: %w", workflowName, err)
	}

	a.logger.Debug("workflow started", "workflow_id", run.GetID(), "run_id", run.GetRunID())

	if err := run.Get(ctx, result); err != nil {
		return fmt.Errorf("%s %s: %w", workflowName, run.GetID(), err)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
