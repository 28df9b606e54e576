package domain

import (
	"fmt"
	"slices"
)

// GradeRequest is the input to the grading workflow.
type GradeRequest struct {
	// Scores to grade, in the order results should be reported.
	Scores []int `json:"scores" validate:"required,min=1,max=1000"`

	// RequestID is an optional client idempotency key carried into event keys.
	RequestID string `json:"request_id,omitempty" validate:"omitempty,max=128,printascii"`
}

// Validate checks structural constraints on the request.
func (r *GradeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// GradeReport summarizes a graded batch.
type GradeReport struct {
	// Results are in request order.
	Results []GradedScore `json:"results"`

	// Distribution counts results per letter grade. Every grade is present, zero or not.
	Distribution map[LetterGrade]int `json:"distribution"`

	// Count is len(Results).
	Count int `json:"count"`
}

// NewGradeReport builds a report from graded results. The results slice is copied.
func NewGradeReport(results []GradedScore) GradeReport {
	dist := make(map[LetterGrade]int, len(AllGrades()))
	for _, g := range AllGrades() {
		dist[g] = 0
	}
	for _, r := range results {
		dist[r.Grade]++
	}
	return GradeReport{
		Results:      slices.Clone(results),
		Distribution: dist,
		Count:        len(results),
	}
}
