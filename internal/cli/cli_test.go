package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsltools/bsllint/pkg/config"
	_ "github.com/bsltools/bsllint/pkg/lint/rules"
	"github.com/bsltools/bsllint/pkg/reporter"
	"github.com/bsltools/bsllint/pkg/runner"
)

const testModule = `Procedure Calculate()
	Timeout = 42;
EndProcedure
`

func writeTestModule(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(BuildInfo{Version: "test"})

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestLintCommandJSONOutput(t *testing.T) {
	path := writeTestModule(t, "Sales.bsl", testModule)

	output, err := executeCommand(t, "lint", path, "--format", "json", "--color", "never")
	require.NoError(t, err)

	var result reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	assert.Equal(t, 1, result.Summary.TotalIssues)
	require.Len(t, result.Files, 1)
	require.Len(t, result.Files[0].Diagnostics, 1)
	assert.Equal(t, "BSL001", result.Files[0].Diagnostics[0].RuleID)
}

func TestLintCommandStrictFailsOnMinor(t *testing.T) {
	path := writeTestModule(t, "Sales.bsl", testModule)

	_, err := executeCommand(t, "lint", path, "--strict", "--color", "never")
	require.ErrorIs(t, err, ErrLintIssuesFound)
}

func TestLintCommandCleanModule(t *testing.T) {
	path := writeTestModule(t, "Clean.bsl", "Procedure Run()\n\tValue = 0;\nEndProcedure\n")

	output, err := executeCommand(t, "lint", path, "--strict", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, output, "No issues found")
}

func TestLintCommandInvalidFormat(t *testing.T) {
	path := writeTestModule(t, "Sales.bsl", testModule)

	_, err := executeCommand(t, "lint", path, "--format", "xml")
	require.Error(t, err)
}

func TestLintCommandDisableRule(t *testing.T) {
	path := writeTestModule(t, "Sales.bsl", testModule)

	_, err := executeCommand(t, "lint", path, "--strict", "--color", "never",
		"--disable", "magic-number")
	require.NoError(t, err)
}

func TestRulesCommandJSON(t *testing.T) {
	output, err := executeCommand(t, "rules", "--format", "json")
	require.NoError(t, err)

	var infos []ruleInfo
	require.NoError(t, json.Unmarshal([]byte(output), &infos))

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
	}

	assert.Contains(t, ids, "BSL001")
	assert.Contains(t, ids, "BSL002")
	assert.Contains(t, ids, "BSL003")
	assert.Contains(t, ids, "BSL004")
}

func TestRulesCommandMarkdown(t *testing.T) {
	output, err := executeCommand(t, "rules", "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, output, "# Rule reference")
	assert.Contains(t, output, "## BSL001: magic-number")
	assert.Contains(t, output, "| `authorizedNumbers` |")
}

func TestRulesCommandHTML(t *testing.T) {
	output, err := executeCommand(t, "rules", "--format", "html")
	require.NoError(t, err)

	assert.Contains(t, output, "<h1")
	assert.Contains(t, output, "Rule reference")
	assert.Contains(t, output, "<table>")
}

func TestRulesCommandUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "rules", "--format", "yaml")
	require.Error(t, err)
}

func TestExitCodeFromResult(t *testing.T) {
	tests := []struct {
		name   string
		stats  runner.Stats
		strict bool
		want   int
	}{
		{
			name: "no issues",
			want: ExitSuccess,
		},
		{
			name: "minor issues lenient",
			stats: runner.Stats{
				DiagnosticsTotal:      2,
				DiagnosticsBySeverity: map[config.Severity]int{config.SeverityMinor: 2},
			},
			want: ExitSuccess,
		},
		{
			name: "minor issues strict",
			stats: runner.Stats{
				DiagnosticsTotal:      2,
				DiagnosticsBySeverity: map[config.Severity]int{config.SeverityMinor: 2},
			},
			strict: true,
			want:   ExitLintWarnings,
		},
		{
			name: "major issues",
			stats: runner.Stats{
				DiagnosticsTotal:      1,
				DiagnosticsBySeverity: map[config.Severity]int{config.SeverityMajor: 1},
			},
			want: ExitLintErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &runner.Result{Stats: tt.stats}
			assert.Equal(t, tt.want, ExitCodeFromResult(result, tt.strict))
		})
	}

	assert.Equal(t, ExitSuccess, ExitCodeFromResult(nil, true))
}
