package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGradeCommand(t *testing.T) {
	out, err := run(t, "grade", "59", "69", "79", "89", "90", "99", "0")
	require.NoError(t, err)
	assert.Equal(t, "59 F\n69 D\n79 C\n89 B\n90 A\n99 A\n0 F\n", out)
}

func TestGradeCommand_Errors(t *testing.T) {
	t.Run("negative score prints nothing", func(t *testing.T) {
		out, err := run(t, "grade", "90", "85", "--", "-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid score")
		assert.Empty(t, out)
	})

	t.Run("negative score first prints nothing", func(t *testing.T) {
		out, err := run(t, "grade", "--", "-1", "90")
		require.Error(t, err)
		assert.Empty(t, out)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := run(t, "grade", "ninety")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ninety" is not an integer`)
	})

	t.Run("no scores", func(t *testing.T) {
		_, err := run(t, "grade")
		require.Error(t, err)
	})
}

func TestGradeCommand_ConfiguredScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grading:
  scale:
    bands:
      - grade: A
        min_score: 50
      - grade: F
        min_score: 0
`), 0o600))

	out, err := run(t, "--config", path, "grade", "49", "50")
	require.NoError(t, err)
	assert.Equal(t, "49 F\n50 A\n", out)
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "2", "2"}, "4\n"},
		{[]string{"add", "3", "7"}, "10\n"},
		{[]string{"add", "--", "-3", "7"}, "4\n"},
	}

	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, "args %v", tt.args)
		assert.Equal(t, tt.want, out, "args %v", tt.args)
	}

	_, err := run(t, "add", "1")
	require.Error(t, err)
}

func TestAddCommand_NegativeOperandHint(t *testing.T) {
	_, err := run(t, "add", "-3", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "put -- before negative operands")

	_, err = run(t, "add", "--bogus", "7")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "negative operands")
}

func TestGradeCommand_LogsScaleAtDebug(t *testing.T) {
	out, stderr, err := runWithStderr(t, "--log-level", "debug", "grade", "95")
	require.NoError(t, err)
	assert.Equal(t, "95 A\n", out)
	assert.Contains(t, stderr, "grading locally")
	assert.Contains(t, stderr, "MinScore:90")
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "trace", "add", "1", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-level")
}

func TestWorkflowID(t *testing.T) {
	assert.Equal(t, "grading-req-1", workflowID("grading-", "req-1"))
	assert.Equal(t, workflowID("grading-", "req-1"), workflowID("grading-", "req-1"))

	generated := workflowID("addition-", "")
	assert.True(t, strings.HasPrefix(generated, "addition-"))
	assert.NotEqual(t, generated, workflowID("addition-", ""))
}
