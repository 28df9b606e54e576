// Package workflow implements the Temporal workflow definitions for the gradebook.
//
// GradingWorkflow grades a batch of scores and summarizes the result;
// AdditionWorkflow sums two integers. Both delegate the work to activities
// and keep the workflow code itself deterministic: no wall clock, no random
// numbers and no I/O outside workflow-safe APIs.
package workflow
