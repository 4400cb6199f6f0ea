package lint_test

import (
	"context"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/lint"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

const (
	testRuleID1 = "XML901"
	testRuleID2 = "XML902"
)

// mockParser implements lint.Parser for testing.
type mockParser struct {
	parseFunc func(ctx context.Context, path string, content []byte) (*xmldoc.FileSnapshot, error)
}

func (p *mockParser) Parse(ctx context.Context, path string, content []byte) (*xmldoc.FileSnapshot, error) {
	if p.parseFunc != nil {
		return p.parseFunc(ctx, path, content)
	}
	return xmldoc.NewFileSnapshot(path, content), nil
}

// testRule returns fixed diagnostics or an error.
type testRule struct {
	lint.BaseRule
	diags []lint.Diagnostic
	err   error
}

func newTestRule(id string, canFix bool) *testRule {
	return &testRule{
		BaseRule: lint.NewBaseRule(id, id+"-name", "test rule", []string{"test"}, canFix),
	}
}

func (r *testRule) Apply(_ *lint.RuleContext) ([]lint.Diagnostic, error) {
	return r.diags, r.err
}

// prefixRule inserts a fixed string at offset 0 while the content lacks it.
type prefixRule struct {
	lint.BaseRule
	prefix string
}

func newPrefixRule(prefix string) *prefixRule {
	return &prefixRule{
		BaseRule: lint.NewBaseRule(testRuleID1, "prefix", "content starts with a prefix", nil, true),
		prefix:   prefix,
	}
}

func (r *prefixRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	content := string(ctx.File.Content)
	if len(content) >= len(r.prefix) && content[:len(r.prefix)] == r.prefix {
		return nil, nil
	}

	diag := lint.NewDiagnosticAt(r.ID(), ctx.Path(), xmldoc.Position{Line: 1, Column: 1}, "missing prefix").
		WithEdit(fix.TextEdit{StartOffset: 0, EndOffset: 0, NewText: r.prefix}).
		Build()
	return []lint.Diagnostic{diag}, nil
}

func fixConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Fix = true
	return cfg
}

func utf8Resource(path string) xmldoc.Resource {
	return xmldoc.Resource{Path: path, Encoding: xmldoc.EncodingUTF8}
}
