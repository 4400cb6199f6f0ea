package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/lint"
)

// Glyphs that make indentation visible in source context.
const (
	spaceGlyph = "·"
	tabGlyph   = "→"
)

// contextIndent aligns source context under the diagnostic line.
const contextIndent = "        "

// FormatDiagnostic formats a diagnostic as
//
//	path:line:col  severity  message  (rule)
//
// followed, when sourceLine is given, by the line with its indentation made
// visible and a caret under the reported column.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, ruleFormat config.RuleFormat, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(diag.FilePath), diag.StartLine, diag.StartColumn)
	rule := s.RuleID.Render("(" + config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName) + ")")

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		rule,
	)

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.StartColumn))
	}

	if diag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " + s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext renders line with leading spaces and tabs shown as
// glyphs and a caret under the 1-based byte column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	line = strings.TrimRight(line, "\r\n")
	indentation := len(line) - len(strings.TrimLeft(line, " \t"))

	visible := VisualizeIndentation(line[:indentation])
	rendered := s.Whitespace.Render(visible) + s.SourceLine.Render(line[indentation:])

	var builder strings.Builder
	builder.WriteString(contextIndent + rendered + "\n")

	if column > 0 {
		prefix := line[:min(column-1, len(line))]
		padding := lipgloss.Width(visibleLine(prefix, indentation))
		builder.WriteString(contextIndent + strings.Repeat(" ", padding) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// VisualizeIndentation replaces spaces and tabs with visible glyphs.
func VisualizeIndentation(ws string) string {
	replacer := strings.NewReplacer(" ", spaceGlyph, "\t", tabGlyph)
	return replacer.Replace(ws)
}

// visibleLine is the unstyled text FormatSourceContext prints for a line prefix.
func visibleLine(prefix string, indentation int) string {
	if len(prefix) <= indentation {
		return VisualizeIndentation(prefix)
	}
	return VisualizeIndentation(prefix[:indentation]) + prefix[indentation:]
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch issueCount {
	case 0:
	case 1:
		header += s.Dim.Render(" (1 issue)")
	default:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
