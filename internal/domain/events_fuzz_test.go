package domain

import (
	"encoding/hex"
	"encoding/json"
	"testing"
)

// FuzzGradeAssignedIdempotencyKey checks that keys are stable, well-formed and position sensitive.
func FuzzGradeAssignedIdempotencyKey(f *testing.F) {
	f.Add("", 0)
	f.Add("wf-1:run-1:1", 7)
	f.Add("🌍:\x00:key", 999)
	f.Add("a:b:c", -1)

	f.Fuzz(func(t *testing.T, clientKey string, index int) {
		key := GradeAssignedIdempotencyKey(clientKey, index)

		if len(key) != 64 {
			t.Fatalf("key length = %d, want 64", len(key))
		}
		if _, err := hex.DecodeString(key); err != nil {
			t.Fatalf("key is not hex: %v", err)
		}
		if key != GradeAssignedIdempotencyKey(clientKey, index) {
			t.Fatalf("key is not deterministic")
		}
		if key == GradeAssignedIdempotencyKey(clientKey, index+1) {
			t.Fatalf("adjacent indexes share a key")
		}
	})
}

// FuzzNewGradeAssignedEvent checks that accepted events round-trip their payload.
func FuzzNewGradeAssignedEvent(f *testing.F) {
	f.Add("wf", "run", 0, 59, "F")
	f.Add("wf", "run", 3, 100, "A")
	f.Add("", "run", 0, 10, "F")
	f.Add("wf", "run", 0, -1, "F")
	f.Add("wf", "run", 0, 10, "E")

	f.Fuzz(func(t *testing.T, workflowID, runID string, index, score int, grade string) {
		env, err := NewGradeAssignedEvent("default", workflowID, runID,
			GradedScore{Score: score, Grade: LetterGrade(grade)}, "key", index)
		if err != nil {
			if err.Error() == "" {
				t.Fatalf("error should have a message")
			}
			return
		}

		if !LetterGrade(grade).Valid() || score < 0 || index < 0 {
			t.Fatalf("accepted invalid payload: index=%d score=%d grade=%q", index, score, grade)
		}

		var payload GradeAssignedPayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			t.Fatalf("payload does not decode: %v", err)
		}
		if payload.Index != index || payload.Score != score || string(payload.Grade) != grade {
			t.Fatalf("payload mismatch: %+v", payload)
		}
	})
}
