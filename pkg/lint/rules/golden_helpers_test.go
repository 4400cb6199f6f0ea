package rules

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/lint"
)

// GoldenTestCase is one testdata/<RULE_ID>/<name>.input.xml file with its
// expected fixed output and diagnostics.
type GoldenTestCase struct {
	Name          string
	InputPath     string
	GoldenPath    string
	DiagsJSONPath string
	RuleID        string
}

// DiagExpectation is the JSON form of an expected diagnostic.
type DiagExpectation struct {
	Rule     string `json:"rule"`
	Name     string `json:"name"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Fixable  bool   `json:"fixable"`
}

func diagFromLint(diag lint.Diagnostic) DiagExpectation {
	return DiagExpectation{
		Rule:     diag.RuleID,
		Name:     diag.RuleName,
		Line:     diag.StartLine,
		Column:   diag.StartColumn,
		Message:  diag.Message,
		Severity: string(diag.Severity),
		Fixable:  diag.HasFix(),
	}
}

// discoverTestCases finds every *.input.xml below a rule ID directory.
func discoverTestCases(t *testing.T, baseDir string) []GoldenTestCase {
	t.Helper()

	cases := make([]GoldenTestCase, 0)

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return cases
		}
		t.Fatalf("failed to read testdata directory: %v", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !isRuleID(entry.Name()) {
			continue
		}

		dirPath := filepath.Join(baseDir, entry.Name())
		inputs, err := filepath.Glob(filepath.Join(dirPath, "*.input.xml"))
		require.NoError(t, err)

		for _, inputPath := range inputs {
			baseName := strings.TrimSuffix(filepath.Base(inputPath), ".input.xml")
			cases = append(cases, GoldenTestCase{
				Name:          filepath.Join(entry.Name(), baseName),
				InputPath:     inputPath,
				GoldenPath:    filepath.Join(dirPath, baseName+".golden.xml"),
				DiagsJSONPath: filepath.Join(dirPath, baseName+".diags.json"),
				RuleID:        entry.Name(),
			})
		}
	}

	return cases
}

// isRuleID reports whether s looks like XML followed by digits.
func isRuleID(s string) bool {
	rest, ok := strings.CutPrefix(s, "XML")
	if !ok || rest == "" {
		return false
	}
	for _, char := range rest {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func readOptional(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return data
}

func writeGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Logf("Updated golden file: %s", path)
}

// compareWithGolden compares actual bytes with the golden file, or rewrites
// the golden file when update is set.
func compareWithGolden(t *testing.T, actual []byte, goldenPath string, update bool) {
	t.Helper()

	if update {
		writeGolden(t, goldenPath, actual)
		return
	}

	expected := readOptional(t, goldenPath)
	if expected == nil {
		t.Errorf("Golden file does not exist: %s\nRun with -update flag to create it.", goldenPath)
		return
	}

	assert.Equal(t, string(expected), string(actual), "output does not match %s", goldenPath)
}

// compareDiags compares diagnostics with the expectations file, or rewrites
// it when update is set.
func compareDiags(t *testing.T, actual []lint.Diagnostic, tc GoldenTestCase, update bool) {
	t.Helper()

	got := make([]DiagExpectation, len(actual))
	for i, d := range actual {
		got[i] = diagFromLint(d)
	}

	if update {
		data, err := json.MarshalIndent(got, "", "  ")
		require.NoError(t, err)
		writeGolden(t, tc.DiagsJSONPath, append(data, '\n'))
		return
	}

	data := readOptional(t, tc.DiagsJSONPath)
	if data == nil {
		t.Errorf("Diagnostics file does not exist: %s\nRun with -update flag to create it.", tc.DiagsJSONPath)
		return
	}

	want := []DiagExpectation{}
	if len(bytes.TrimSpace(data)) > 0 {
		require.NoError(t, json.Unmarshal(data, &want))
	}

	assert.Equal(t, want, got)
}

// applyAllFixes applies every fix edit of diags to input.
func applyAllFixes(t *testing.T, input []byte, diags []lint.Diagnostic) []byte {
	t.Helper()

	var edits []fix.TextEdit
	for _, diag := range diags {
		edits = append(edits, diag.FixEdits...)
	}
	if len(edits) == 0 {
		return input
	}

	accepted, skipped, _, err := fix.PrepareEditsFiltered(edits, len(input))
	require.NoError(t, err)
	if len(skipped) > 0 {
		t.Logf("Note: %d edits skipped due to conflicts", len(skipped))
	}

	return fix.ApplyEdits(input, accepted)
}
