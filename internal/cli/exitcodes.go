package cli

import (
	"errors"

	"github.com/yaklabco/goxmllint/internal/configloader"
	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/runner"
)

// Exit codes for goxmllint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors or files
	// that could not be checked.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found warnings (when strict mode).
	ExitLintWarnings = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates any other failure.
	ExitInternalError = 70
)

var (
	// ErrLintIssuesFound is returned when error diagnostics or failed files
	// were reported.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrLintWarningsFound is returned in strict mode when only warnings
	// were reported.
	ErrLintWarningsFound = errors.New("lint warnings found")
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	stats := result.Stats
	if stats.DiagnosticsBySeverity[config.SeverityError] > 0 || stats.FilesErrored > 0 {
		return ExitLintErrors
	}

	if strict && stats.DiagnosticsBySeverity[config.SeverityWarning] > 0 {
		return ExitLintWarnings
	}

	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var verr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLintIssuesFound):
		return ExitLintErrors
	case errors.Is(err, ErrLintWarningsFound):
		return ExitLintWarnings
	case errors.As(err, &verr):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// errorForExitCode is the sentinel runLint returns for a lint exit code.
func errorForExitCode(code int) error {
	switch code {
	case ExitLintErrors:
		return ErrLintIssuesFound
	case ExitLintWarnings:
		return ErrLintWarningsFound
	default:
		return nil
	}
}
