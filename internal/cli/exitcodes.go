package cli

import (
	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/runner"
)

// Exit codes for bsllint.
const (
	// ExitSuccess indicates successful execution with no blocking issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found issues at or above
	// major severity.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint found lower-severity issues in strict mode.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.IssuesAtLeast(config.SeverityMajor) > 0 {
		return ExitLintErrors
	}

	if strict && result.HasIssues() {
		return ExitLintWarnings
	}

	return ExitSuccess
}
