package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/runner"
)

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.DiagnosticsTotal == 0 {
		parts = append(parts, s.Success.Render("No issues found")+
			s.Dim.Render(fmt.Sprintf(" (%s checked)", plural(stats.FilesProcessed, "file", "files"))))
	} else {
		main := plural(stats.DiagnosticsTotal, "issue", "issues")
		if breakdown := s.severityBreakdown(stats); breakdown != "" {
			main += " (" + breakdown + ")"
		}
		parts = append(parts, main+" in "+plural(stats.FilesWithIssues, "file", "files"))

		if stats.DiagnosticsFixable > 0 {
			parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
		}
	}

	if stats.DiagnosticsFixed > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %s",
			stats.DiagnosticsFixed, plural(stats.FilesModified, "file", "files"))))
	}
	if stats.FilesUnbalanced > 0 {
		parts = append(parts, s.Failure.Render(plural(stats.FilesUnbalanced, "unbalanced file", "unbalanced files")))
	}
	if other := stats.FilesErrored - stats.FilesUnbalanced; other > 0 {
		parts = append(parts, s.Failure.Render(plural(other, "file failed", "files failed")))
	}

	return strings.Join(parts, ", ") + "\n"
}

func (s *Styles) severityBreakdown(stats runner.Stats) string {
	var parts []string
	if n := stats.DiagnosticsBySeverity[config.SeverityError]; n > 0 {
		parts = append(parts, s.Error.Render(plural(n, "error", "errors")))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityWarning]; n > 0 {
		parts = append(parts, s.Warning.Render(plural(n, "warning", "warnings")))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityInfo]; n > 0 {
		parts = append(parts, s.Info.Render(fmt.Sprintf("%d info", n)))
	}
	return strings.Join(parts, ", ")
}
