package domain

import "fmt"

// MaxScoresPerRequest bounds a single grading batch.
const MaxScoresPerRequest = 1000

// MaxRequestIDLength bounds the client-supplied request identifier.
const MaxRequestIDLength = 128

// GradeScoresInput contains the scores to grade in a single activity call.
// Negative scores pass structural validation; they are rejected by the grader
// so the caller sees ErrInvalidScore rather than a generic validation failure.
type GradeScoresInput struct {
	Scores []int `json:"scores" validate:"required,min=1,max=1000"`

	// RequestID, when set, replaces the execution identity in event idempotency keys.
	RequestID string `json:"request_id,omitempty" validate:"omitempty,max=128,printascii"`
}

// Validate checks structural constraints on the input.
func (i *GradeScoresInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// GradedScore pairs a score with the grade it maps to.
type GradedScore struct {
	Score int         `json:"score" validate:"min=0"`
	Grade LetterGrade `json:"grade" validate:"required,oneof=A B C D F"`
}

// GradeScoresOutput holds one result per input score, in input order.
type GradeScoresOutput struct {
	Results []GradedScore `json:"results" validate:"required,min=1,dive"`
}

// Validate checks that every result carries a known grade and a gradeable score.
func (o *GradeScoresOutput) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// AddInput holds the two operands of an addition. Any integers are accepted.
type AddInput struct {
	A int `json:"a"`
	B int `json:"b"`
}

// AddOutput carries the arithmetic sum.
type AddOutput struct {
	Sum int `json:"sum"`
}
