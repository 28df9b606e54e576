// Package grader converts numeric scores to letter grades.
//
// Bands are inclusive lower bounds evaluated highest first. With the default
// scale a score of 90 or more is an A, 80 a B, 70 a C, 60 a D and anything
// from 0 up to 59 an F. Scores above 100 are accepted and grade as A.
// Negative scores fail with domain.ErrInvalidScore.
package grader

import (
	"fmt"

	"github.com/ahrav/go-gradebook/internal/domain"
)

// Grader maps scores to letter grades using a fixed scale.
// The zero value uses the default scale and is ready to use.
// A Grader is immutable after construction and safe for concurrent use.
type Grader struct {
	scale *domain.GradingScale
}

// NewGrader returns a Grader for the given scale.
// The scale is copied so later changes by the caller have no effect.
func NewGrader(scale domain.GradingScale) (*Grader, error) {
	if err := scale.Validate(); err != nil {
		return nil, fmt.Errorf("new grader: %w", err)
	}
	s := scale.Clone()
	return &Grader{scale: &s}, nil
}

// DetermineLetterGrade returns the letter grade for score.
func (g *Grader) DetermineLetterGrade(score int) (domain.LetterGrade, error) {
	if g == nil || g.scale == nil {
		return DetermineLetterGrade(score)
	}
	return g.scale.Lookup(score)
}

// Scale returns a copy of the scale in use.
func (g *Grader) Scale() domain.GradingScale {
	if g == nil || g.scale == nil {
		return domain.DefaultGradingScale()
	}
	return g.scale.Clone()
}

// DetermineLetterGrade returns the letter grade for score on the default scale.
func DetermineLetterGrade(score int) (domain.LetterGrade, error) {
	switch {
	case score < domain.MinScore:
		return "", fmt.Errorf("%w: %d is below %d", domain.ErrInvalidScore, score, domain.MinScore)
	case score >= domain.MinScoreA:
		return domain.GradeA, nil
	case score >= domain.MinScoreB:
		return domain.GradeB, nil
	case score >= domain.MinScoreC:
		return domain.GradeC, nil
	case score >= domain.MinScoreD:
		return domain.GradeD, nil
	default:
		return domain.GradeF, nil
	}
}
