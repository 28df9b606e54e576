package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeScoresInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   GradeScoresInput
		wantErr bool
	}{
		{"single score", GradeScoresInput{Scores: []int{59}}, false},
		{"negative scores pass structural validation", GradeScoresInput{Scores: []int{-1}}, false},
		{"nil scores", GradeScoresInput{}, true},
		{"empty scores", GradeScoresInput{Scores: []int{}}, true},
		{"too many scores", GradeScoresInput{Scores: make([]int, MaxScoresPerRequest+1)}, true},
		{"max scores", GradeScoresInput{Scores: make([]int, MaxScoresPerRequest)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGradeScoresOutput_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out := GradeScoresOutput{Results: []GradedScore{{Score: 90, Grade: GradeA}, {Score: 0, Grade: GradeF}}}
		require.NoError(t, out.Validate())
	})

	t.Run("empty results", func(t *testing.T) {
		out := GradeScoresOutput{}
		require.ErrorIs(t, out.Validate(), ErrInvalidRequest)
	})

	t.Run("unknown grade", func(t *testing.T) {
		out := GradeScoresOutput{Results: []GradedScore{{Score: 50, Grade: "E"}}}
		require.ErrorIs(t, out.Validate(), ErrInvalidRequest)
	})

	t.Run("negative score", func(t *testing.T) {
		out := GradeScoresOutput{Results: []GradedScore{{Score: -3, Grade: GradeF}}}
		require.ErrorIs(t, out.Validate(), ErrInvalidRequest)
	})
}

func TestGradeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GradeRequest
		wantErr bool
	}{
		{"scores only", GradeRequest{Scores: []int{1, 2, 3}}, false},
		{"with request id", GradeRequest{Scores: []int{1}, RequestID: "req-42"}, false},
		{"missing scores", GradeRequest{RequestID: "req-42"}, true},
		{"request id too long", GradeRequest{Scores: []int{1}, RequestID: strings.Repeat("x", MaxRequestIDLength+1)}, true},
		{"request id not printable", GradeRequest{Scores: []int{1}, RequestID: "req\n42"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewGradeReport(t *testing.T) {
	results := []GradedScore{
		{Score: 95, Grade: GradeA},
		{Score: 91, Grade: GradeA},
		{Score: 72, Grade: GradeC},
		{Score: 12, Grade: GradeF},
	}

	report := NewGradeReport(results)

	assert.Equal(t, 4, report.Count)
	assert.Equal(t, map[LetterGrade]int{GradeA: 2, GradeB: 0, GradeC: 1, GradeD: 0, GradeF: 1}, report.Distribution)
	assert.Equal(t, results, report.Results)

	t.Run("results are copied", func(t *testing.T) {
		results[0].Grade = GradeB
		assert.Equal(t, GradeA, report.Results[0].Grade)
	})

	t.Run("empty results list every grade", func(t *testing.T) {
		empty := NewGradeReport(nil)
		assert.Zero(t, empty.Count)
		assert.Len(t, empty.Distribution, len(AllGrades()))
	})
}
