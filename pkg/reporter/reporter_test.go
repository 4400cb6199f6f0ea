package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/lint"
	_ "github.com/yaklabco/goxmllint/pkg/lint/rules" // Register rules
	"github.com/yaklabco/goxmllint/pkg/reporter"
	"github.com/yaklabco/goxmllint/pkg/runner"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

const (
	original = "<a>\n<b/>\n</a>\n"
	fixed    = "<a>\n  <b/>\n</a>\n"
)

// sampleResult has one file with a missing indentation and one file that
// failed to parse.
func sampleResult() *runner.Result {
	diag := lint.Diagnostic{
		RuleID:      "XML001",
		RuleName:    "xml-indent",
		Message:     "insert 2 spaces before <b>",
		Severity:    config.SeverityWarning,
		FilePath:    "a.xml",
		StartLine:   2,
		StartColumn: 1,
		EndLine:     2,
		EndColumn:   1,
		Suggestion:  "indent with 2 spaces",
		FixEdits:    []fix.TextEdit{{StartOffset: 4, EndOffset: 4, NewText: "  "}},
	}

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "a.xml",
				Result: &lint.PipelineResult{
					FileResult: &lint.FileResult{
						Snapshot:    xmldoc.NewFileSnapshot("a.xml", []byte(original)),
						Diagnostics: []lint.Diagnostic{diag},
					},
					Path:     "a.xml",
					Resource: xmldoc.Resource{Path: "a.xml", Encoding: xmldoc.EncodingUTF8},
					Diff:     fix.GenerateDiff("a.xml", []byte(original), []byte(fixed)),
				},
			},
			{
				Path:  "broken.xml",
				Error: errors.New("unbalanced closing tag </c>"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:    2,
			FilesProcessed:     1,
			FilesErrored:       1,
			FilesUnbalanced:    1,
			FilesWithIssues:    1,
			DiagnosticsTotal:   1,
			DiagnosticsFixable: 1,
			DiagnosticsBySeverity: map[config.Severity]int{
				config.SeverityWarning: 1,
			},
		},
	}
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), count
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format reporter.Format
		want   any
	}{
		{"", &reporter.TextReporter{}},
		{reporter.FormatText, &reporter.TextReporter{}},
		{reporter.FormatJSON, &reporter.JSONReporter{}},
		{reporter.FormatSARIF, &reporter.SARIFReporter{}},
		{reporter.FormatDiff, &reporter.DiffReporter{}},
		{reporter.FormatCheckstyle, &reporter.CheckstyleReporter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			rep, err := reporter.New(reporter.Options{Format: tt.format, Writer: &bytes.Buffer{}})
			require.NoError(t, err)
			assert.IsType(t, tt.want, rep)
		})
	}

	_, err := reporter.New(reporter.Options{Format: "table"})
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	format, err := reporter.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, reporter.FormatText, format)

	format, err = reporter.ParseFormat("checkstyle")
	require.NoError(t, err)
	assert.Equal(t, reporter.FormatCheckstyle, format)

	_, err = reporter.ParseFormat("summary")
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	out, count := report(t, opts, sampleResult())

	assert.Equal(t, 1, count)
	assert.Contains(t, out, "a.xml (1 issue)\n")
	assert.Contains(t, out, "a.xml:2:1  warning  insert 2 spaces before <b>  (xml-indent)\n")
	assert.Contains(t, out, "        <b/>\n        ^\n")
	assert.Contains(t, out, "broken.xml: error: unbalanced closing tag </c>\n")
	assert.Contains(t, out, "1 issue (1 warning) in 1 file, 1 fixable, 1 unbalanced file\n")
}

func TestTextReporter_Flat(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.GroupByFile = false
	opts.ShowContext = false
	opts.ShowSummary = false
	opts.RuleFormat = config.RuleFormatID

	out, _ := report(t, opts, sampleResult())

	assert.NotContains(t, out, "(1 issue)")
	assert.NotContains(t, out, "<b/>")
	assert.Contains(t, out, "(XML001)")
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.DefaultOptions(), &runner.Result{})
	assert.Zero(t, count)
	assert.Equal(t, "No files to check.\n", out)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatJSON
	out, count := report(t, opts, sampleResult())
	assert.Equal(t, 1, count)

	var doc reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Files, 2)
	first := doc.Files[0]
	assert.Equal(t, "UTF-8", first.Encoding)
	require.Len(t, first.Diagnostics, 1)
	assert.Equal(t, config.SeverityWarning, first.Diagnostics[0].Severity)
	assert.True(t, first.Diagnostics[0].Fixable)
	assert.Equal(t, []reporter.JSONFix{{StartOffset: 4, EndOffset: 4, NewText: "  "}}, first.Diagnostics[0].Fixes)

	assert.Equal(t, "unbalanced closing tag </c>", doc.Files[1].Error)
	assert.Equal(t, 1, doc.Summary.FilesUnbalanced)
	assert.Equal(t, 1, doc.Summary.BySeverity[config.SeverityWarning])
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatJSON
	opts.Compact = true
	out, _ := report(t, opts, nil)

	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("\n")))
	assert.Contains(t, out, `"files":[]`)
}

func TestSARIFReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatSARIF
	opts.ToolVersion = "1.2.3"
	out, count := report(t, opts, sampleResult())
	assert.Equal(t, 1, count)

	var doc reporter.SARIFOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Runs, 1)

	run := doc.Runs[0]
	assert.Equal(t, "goxmllint", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	require.Len(t, run.Tool.Driver.Rules, 1)
	assert.Equal(t, "XML001", run.Tool.Driver.Rules[0].ID)
	assert.NotEmpty(t, run.Tool.Driver.Rules[0].ShortDescription.Text)

	require.Len(t, run.Results, 1)
	res := run.Results[0]
	assert.Equal(t, "warning", res.Level)
	require.Len(t, res.Fixes, 1)
	replacement := res.Fixes[0].ArtifactChanges[0].Replacements[0]
	assert.Equal(t, reporter.SARIFRegion{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 1}, replacement.DeletedRegion)
	assert.Equal(t, "  ", replacement.InsertedContent.Text)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatDiff
	out, count := report(t, opts, sampleResult())

	assert.Equal(t, 1, count)
	assert.Contains(t, out, "diff --git a/a.xml b/a.xml\n--- a/a.xml\n+++ b/a.xml\n")
	assert.Contains(t, out, "-<b/>\n+··<b/>\n")
	assert.Contains(t, out, "1 file changed, 1 insertion(+), 1 deletion(-)\n")
}

func TestCheckstyleReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatCheckstyle
	opts.RuleFormat = config.RuleFormatCombined
	out, count := report(t, opts, sampleResult())
	assert.Equal(t, 1, count)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))

	root := doc.SelectElement("checkstyle")
	require.NotNil(t, root)
	assert.Equal(t, "4.3", root.SelectAttrValue("version", ""))

	files := root.SelectElements("file")
	require.Len(t, files, 2)

	diag := files[0].SelectElement("error")
	require.NotNil(t, diag)
	assert.Equal(t, "a.xml", files[0].SelectAttrValue("name", ""))
	assert.Equal(t, "2", diag.SelectAttrValue("line", ""))
	assert.Equal(t, "1", diag.SelectAttrValue("column", ""))
	assert.Equal(t, "warning", diag.SelectAttrValue("severity", ""))
	assert.Equal(t, "insert 2 spaces before <b>", diag.SelectAttrValue("message", ""))
	assert.Equal(t, "goxmllint.XML001/xml-indent", diag.SelectAttrValue("source", ""))

	failure := files[1].SelectElement("error")
	require.NotNil(t, failure)
	assert.Equal(t, "error", failure.SelectAttrValue("severity", ""))
	assert.Empty(t, failure.SelectAttrValue("line", ""))
}
