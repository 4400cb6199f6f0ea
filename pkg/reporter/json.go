package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/runner"
)

// jsonSchemaVersion is bumped when the JSON document changes incompatibly.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Encoding    string           `json:"encoding,omitempty"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Modified    bool             `json:"modified,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	RuleID      string          `json:"ruleId"`
	RuleName    string          `json:"ruleName"`
	Severity    config.Severity `json:"severity"`
	Message     string          `json:"message"`
	StartLine   int             `json:"startLine"`
	StartColumn int             `json:"startColumn"`
	EndLine     int             `json:"endLine"`
	EndColumn   int             `json:"endColumn"`
	Suggestion  string          `json:"suggestion,omitempty"`
	Fixable     bool            `json:"fixable"`
	Fixes       []JSONFix       `json:"fixes,omitempty"`
}

// JSONFix represents a proposed fix as a byte range of the UTF-8 content.
type JSONFix struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int                     `json:"filesChecked"`
	FilesWithIssues int                     `json:"filesWithIssues"`
	FilesModified   int                     `json:"filesModified"`
	FilesErrored    int                     `json:"filesErrored"`
	FilesUnbalanced int                     `json:"filesUnbalanced"`
	TotalIssues     int                     `json:"totalIssues"`
	Fixable         int                     `json:"fixable"`
	BySeverity      map[config.Severity]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[config.Severity]int),
		},
	}

	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary.FilesChecked = stats.FilesProcessed
	output.Summary.FilesWithIssues = stats.FilesWithIssues
	output.Summary.FilesModified = stats.FilesModified
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.FilesUnbalanced = stats.FilesUnbalanced
	output.Summary.TotalIssues = stats.DiagnosticsTotal
	output.Summary.Fixable = stats.DiagnosticsFixable
	for severity, count := range stats.DiagnosticsBySeverity {
		output.Summary.BySeverity[severity] = count
	}

	for _, file := range result.Files {
		output.Files = append(output.Files, buildJSONFile(file))
	}

	return output
}

func buildJSONFile(file runner.FileOutcome) JSONFileResult {
	fileResult := JSONFileResult{
		Path:        file.Path,
		Diagnostics: make([]JSONDiagnostic, 0),
	}

	if file.Error != nil {
		fileResult.Error = file.Error.Error()
		return fileResult
	}
	if file.Result == nil {
		return fileResult
	}

	fileResult.Modified = file.Result.Written
	fileResult.Encoding = file.Result.Resource.Encoding

	if file.Result.FileResult == nil {
		return fileResult
	}

	for _, diag := range file.Result.Diagnostics {
		jsonDiag := JSONDiagnostic{
			RuleID:      diag.RuleID,
			RuleName:    diag.RuleName,
			Severity:    diag.Severity,
			Message:     diag.Message,
			StartLine:   diag.StartLine,
			StartColumn: diag.StartColumn,
			EndLine:     diag.EndLine,
			EndColumn:   diag.EndColumn,
			Suggestion:  diag.Suggestion,
			Fixable:     diag.HasFix(),
		}
		if jsonDiag.Severity == "" {
			jsonDiag.Severity = config.SeverityWarning
		}

		for _, edit := range diag.FixEdits {
			jsonDiag.Fixes = append(jsonDiag.Fixes, JSONFix{
				StartOffset: edit.StartOffset,
				EndOffset:   edit.EndOffset,
				NewText:     edit.NewText,
			})
		}

		fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiag)
	}

	return fileResult
}
