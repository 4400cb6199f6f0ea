package lint

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *xmldoc.FileSnapshot

	// Diagnostics contains all issues found.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits for auto-fix.
	// Empty if no fixes are available or --fix was not requested.
	Edits []fix.TextEdit

	// SkippedEdits contains edits that were skipped due to conflicts.
	// When multiple edits overlap, earlier edits (by start position) take precedence.
	SkippedEdits []fix.TextEdit

	// EditConflicts is true if any edits were skipped due to conflicts.
	EditConflicts bool

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// RuleError joins the rule errors in rule ID order, or returns nil.
func (fr *FileResult) RuleError() error {
	if len(fr.RuleErrors) == 0 {
		return nil
	}

	errs := make([]error, 0, len(fr.RuleErrors))
	for _, id := range slices.Sorted(maps.Keys(fr.RuleErrors)) {
		errs = append(errs, fmt.Errorf("%s: %w", id, fr.RuleErrors[id]))
	}
	return errors.Join(errs...)
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses XML content into FileSnapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry

	// Styles supplies per-file indentation settings (may be nil).
	Styles StyleProvider
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file. Content must already be decoded
// to UTF-8; res records where it came from and its original encoding.
func (e *Engine) LintFile(
	ctx context.Context,
	res xmldoc.Resource,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, res.Path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	snapshot.Resource = res

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	var allEdits []fix.TextEdit

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
		ruleCtx.Registry = e.Registry
		ruleCtx.Styles = e.Styles

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity

			if diags[i].FilePath == "" {
				diags[i].FilePath = res.Path
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}

			if rr.AutoFix && len(diags[i].FixEdits) > 0 {
				allEdits = append(allEdits, diags[i].FixEdits...)
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	if len(allEdits) > 0 {
		accepted, skipped, _, err := fix.PrepareEditsFiltered(allEdits, len(content))
		if err != nil {
			// Out-of-range edits: keep the diagnostics, drop every fix.
			result.EditConflicts = true
		} else {
			result.Edits = accepted
			result.SkippedEdits = skipped
			result.EditConflicts = len(skipped) > 0
		}
	}

	return result, nil
}
