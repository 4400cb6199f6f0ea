package rules

import (
	"fmt"

	"github.com/yaklabco/goxmllint/internal/logging"
	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/indent"
	"github.com/yaklabco/goxmllint/pkg/lint"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// Option keys accepted under rules.XML001.options.
const (
	OptionIndentSize  = "indent_size"
	OptionIndentStyle = "indent_style"
)

// IndentRule checks that nested elements are indented by one level per depth.
type IndentRule struct {
	lint.BaseRule
}

// NewIndentRule creates the XML001 rule.
func NewIndentRule() *IndentRule {
	return &IndentRule{
		BaseRule: lint.NewBaseRule(
			"XML001",
			"xml-indent",
			"Nested elements should be indented one level deeper than their parent",
			[]string{"whitespace", "indentation"},
			true,
		),
	}
}

// Apply runs the indentation validator over the file's event stream.
// An unbalanced closing tag stops the check and is returned as an error.
func (r *IndentRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	opts, err := resolveIndentOptions(ctx)
	if err != nil {
		return nil, err
	}

	var violations []indent.Violation
	validator := indent.NewValidator(ctx.File.Resource, opts, indent.HandlerFunc(func(v indent.Violation) {
		violations = append(violations, v)
	}))

	for _, ev := range ctx.File.Events {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if err := validator.Consume(ev); err != nil {
			return nil, err
		}
	}

	if open := validator.OpenElements(); len(open) > 0 {
		logging.FromContext(ctx.Ctx).Debug("document ends with open elements",
			logging.FieldPath, ctx.Path(),
			logging.FieldElement, open,
		)
	}

	if len(violations) == 0 {
		return nil, nil
	}

	tags := tagsByOffset(ctx.File.Events)
	diags := make([]lint.Diagnostic, 0, len(violations))
	for _, v := range violations {
		diags = append(diags, r.diagnostic(ctx.File, tags, v))
	}

	return diags, nil
}

// diagnostic converts a violation into a diagnostic, attaching the fix only
// when it touches nothing but the line's leading indentation.
func (r *IndentRule) diagnostic(file *xmldoc.FileSnapshot, tags map[int]xmldoc.Event, v indent.Violation) lint.Diagnostic {
	offset, ok := file.Offset(v.Location.Line, v.Location.Column)

	target := "element"
	if ok {
		tagOffset := offset
		if v.Fix.Kind == fix.EditDelete {
			tagOffset += v.Fix.Count
		}
		if ev, found := tags[tagOffset]; found {
			target = tagLabel(ev)
		}
	}

	builder := lint.NewDiagnosticAt(r.ID(), file.Path, v.Location, fmt.Sprintf("%s before %s", v.Fix, target)).
		WithRuleName(r.Name()).
		WithSeverity(r.DefaultSeverity())

	if v.Fix.Kind == fix.EditDelete {
		builder.WithEnd(xmldoc.Position{Line: v.Location.Line, Column: v.Location.Column + v.Fix.Count})
	}

	if ok {
		edit := v.Fix.At(offset)
		if withinIndentation(file, v.Location.Line, edit) {
			builder.WithEdit(edit)
		}
	}

	return builder.Build()
}

// withinIndentation reports whether edit only touches the blanks that start
// line, so that applying it cannot change anything but indentation.
func withinIndentation(file *xmldoc.FileSnapshot, line int, edit fix.TextEdit) bool {
	if line < 1 || line > len(file.Lines) {
		return false
	}

	start := file.Lines[line-1].StartOffset
	if edit.StartOffset < start || edit.EndOffset > len(file.Content) {
		return false
	}
	for _, b := range file.Content[start:edit.EndOffset] {
		if b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}

func tagsByOffset(events []xmldoc.Event) map[int]xmldoc.Event {
	tags := make(map[int]xmldoc.Event)
	for _, ev := range events {
		switch ev.Kind {
		case xmldoc.EventOpenTag, xmldoc.EventCloseTag, xmldoc.EventEmptyTag:
			tags[ev.Offset] = ev
		case xmldoc.EventCharData, xmldoc.EventBoundary:
		}
	}
	return tags
}

func tagLabel(ev xmldoc.Event) string {
	switch ev.Kind {
	case xmldoc.EventCloseTag:
		return "</" + ev.Name + ">"
	case xmldoc.EventEmptyTag:
		return "<" + ev.Name + "/>"
	default:
		return "<" + ev.Name + ">"
	}
}

// resolveIndentOptions layers, lowest first: built-in defaults, the config
// file's indent block, the file's .editorconfig section, the rule options and
// the command-line flags.
// A layer that switches style without giving a size resets the size to the
// style's default.
func resolveIndentOptions(ctx *lint.RuleContext) (indent.Options, error) {
	var layers styleLayers

	if ctx.Config != nil {
		layers.apply(ctx.Config.Indent.Style, ctx.Config.Indent.Size)
	}

	source := "config"
	if ctx.Styles != nil && ctx.Config.UseEditorConfig() {
		fromFile, err := ctx.Styles.IndentFor(ctx.Path())
		if err != nil {
			return indent.Options{}, fmt.Errorf("read indentation style for %s: %w", ctx.Path(), err)
		}
		if layers.apply(fromFile.Style, fromFile.Size) {
			source = "editorconfig"
		}
	}

	if layers.apply(ctx.OptionString(OptionIndentStyle, ""), ctx.OptionInt(OptionIndentSize, 0)) {
		source = "rule options"
	}

	if ctx.Config != nil && layers.apply(ctx.Config.IndentOverride.Style, ctx.Config.IndentOverride.Size) {
		source = "flags"
	}

	opts, err := indent.OptionsForStyle(layers.style, layers.size)
	if err != nil {
		return indent.Options{}, fmt.Errorf("%s: %w", ctx.Path(), err)
	}

	logging.FromContext(ctx.Ctx).Debug("resolved indentation",
		logging.FieldPath, ctx.Path(),
		logging.FieldIndentStyle, opts.Style(),
		logging.FieldIndentSize, opts.IndentSize,
		logging.FieldSource, source,
	)

	return opts, nil
}

type styleLayers struct {
	style string
	size  int
}

// apply overlays one layer and reports whether it set anything.
func (l *styleLayers) apply(style string, size int) bool {
	changed := false
	if style != "" {
		if style != l.style {
			l.size = 0
		}
		l.style = style
		changed = true
	}
	if size > 0 {
		l.size = size
		changed = true
	}
	return changed
}
