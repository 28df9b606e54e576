// Package domain defines the value types shared by grading and arithmetic
// operations: letter grades, grading scales, activity and workflow payloads,
// and the domain events emitted when results are produced.
//
// All types are plain values. Validation is explicit through Validate methods
// so callers decide where a boundary check happens.
package domain

import (
	"fmt"
	"slices"
)

// LetterGrade is the categorical symbol representing a score band.
type LetterGrade string

// Letter grades from highest to lowest.
const (
	GradeA LetterGrade = "A"
	GradeB LetterGrade = "B"
	GradeC LetterGrade = "C"
	GradeD LetterGrade = "D"
	GradeF LetterGrade = "F"
)

// Default inclusive lower bounds for each band.
const (
	MinScoreA = 90
	MinScoreB = 80
	MinScoreC = 70
	MinScoreD = 60
	MinScoreF = 0
)

// MinScore is the lowest gradeable score. Anything below it is ErrInvalidScore.
const MinScore = 0

// AllGrades returns every letter grade ordered from highest to lowest.
func AllGrades() []LetterGrade {
	return []LetterGrade{GradeA, GradeB, GradeC, GradeD, GradeF}
}

// Valid reports whether g is one of the known letter grades.
func (g LetterGrade) Valid() bool {
	return slices.Contains(AllGrades(), g)
}

// String implements fmt.Stringer.
func (g LetterGrade) String() string { return string(g) }

// GradeBand maps every score at or above MinScore (and below the next band) to Grade.
type GradeBand struct {
	Grade    LetterGrade `json:"grade"     yaml:"grade"     validate:"required,oneof=A B C D F"`
	MinScore int         `json:"min_score" yaml:"min_score" validate:"min=0"`
}

// GradingScale is an ordered set of bands evaluated highest first.
type GradingScale struct {
	Bands []GradeBand `json:"bands" yaml:"bands" validate:"required,min=1,max=5,dive"`
}

// DefaultGradingScale returns the standard A/B/C/D/F scale with 90/80/70/60 cutoffs.
// Returns a fresh copy so callers may modify it freely.
func DefaultGradingScale() GradingScale {
	return GradingScale{Bands: []GradeBand{
		{Grade: GradeA, MinScore: MinScoreA},
		{Grade: GradeB, MinScore: MinScoreB},
		{Grade: GradeC, MinScore: MinScoreC},
		{Grade: GradeD, MinScore: MinScoreD},
		{Grade: GradeF, MinScore: MinScoreF},
	}}
}

// Validate checks that the scale is well formed: grades are distinct, lower
// bounds strictly descend, and the final band starts at MinScore so that every
// non-negative score has a grade.
func (s GradingScale) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScale, err)
	}

	seen := make(map[LetterGrade]struct{}, len(s.Bands))
	for i, b := range s.Bands {
		if _, dup := seen[b.Grade]; dup {
			return fmt.Errorf("%w: grade %s appears more than once", ErrInvalidScale, b.Grade)
		}
		seen[b.Grade] = struct{}{}

		if i > 0 && b.MinScore >= s.Bands[i-1].MinScore {
			return fmt.Errorf("%w: band %s min %d must be below band %s min %d",
				ErrInvalidScale, b.Grade, b.MinScore, s.Bands[i-1].Grade, s.Bands[i-1].MinScore)
		}
	}

	if last := s.Bands[len(s.Bands)-1]; last.MinScore != MinScore {
		return fmt.Errorf("%w: lowest band %s must start at %d, got %d",
			ErrInvalidScale, last.Grade, MinScore, last.MinScore)
	}
	return nil
}

// Lookup returns the grade for score on a validated scale.
// Negative scores fail with ErrInvalidScore; there is no upper bound.
func (s GradingScale) Lookup(score int) (LetterGrade, error) {
	if score < MinScore {
		return "", fmt.Errorf("%w: %d is below %d", ErrInvalidScore, score, MinScore)
	}
	for _, b := range s.Bands {
		if score >= b.MinScore {
			return b.Grade, nil
		}
	}
	// Unreachable on a validated scale.
	return "", fmt.Errorf("%w: no band covers %d", ErrInvalidScale, score)
}

// Clone returns a deep copy of the scale.
func (s GradingScale) Clone() GradingScale {
	return GradingScale{Bands: slices.Clone(s.Bands)}
}
