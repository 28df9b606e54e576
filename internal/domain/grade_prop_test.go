package domain

import (
	"testing"
	"testing/quick"
)

// Property: every non-negative score maps to the band whose range contains it.
func TestGradingScale_Lookup_BandProperty(t *testing.T) {
	scale := DefaultGradingScale()

	f := func(raw uint16) bool {
		score := int(raw)
		got, err := scale.Lookup(score)
		if err != nil {
			return false
		}

		switch {
		case score >= 90:
			return got == GradeA
		case score >= 80:
			return got == GradeB
		case score >= 70:
			return got == GradeC
		case score >= 60:
			return got == GradeD
		default:
			return got == GradeF
		}
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("Lookup band property failed: %v", err)
	}
}

// Property: every negative score is rejected.
func TestGradingScale_Lookup_NegativeProperty(t *testing.T) {
	scale := DefaultGradingScale()

	f := func(raw int32) bool {
		score := int(raw)
		if score >= 0 {
			score = -score - 1
		}
		got, err := scale.Lookup(score)
		return err != nil && got == ""
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("Lookup negative property failed: %v", err)
	}
}

// Property: grades never improve as the score decreases.
func TestGradingScale_Lookup_MonotonicProperty(t *testing.T) {
	scale := DefaultGradingScale()
	rank := map[LetterGrade]int{GradeA: 4, GradeB: 3, GradeC: 2, GradeD: 1, GradeF: 0}

	f := func(a, b uint16) bool {
		lo, hi := int(a), int(b)
		if lo > hi {
			lo, hi = hi, lo
		}
		gLo, errLo := scale.Lookup(lo)
		gHi, errHi := scale.Lookup(hi)
		if errLo != nil || errHi != nil {
			return false
		}
		return rank[gLo] <= rank[gHi]
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("Lookup monotonic property failed: %v", err)
	}
}
