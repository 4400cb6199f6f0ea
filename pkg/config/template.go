package config

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width of wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every rule; otherwise a minimal template is produced.
	Full bool

	// Format is "yaml" or "json".
	Format string
}

// RuleInfo is the rule metadata shown in templates.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
	CanFix      bool
}

// RuleInfoProvider returns rule metadata. It decouples this package from lint.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

const templateHeader = `# goxmllint configuration
# See: https://github.com/yaklabco/goxmllint`

const minimalTemplateBody = `
# Indentation style: space or tab, and characters per nesting level.
indent:
  style: space
  size: 2

# Read indent_style and indent_size from .editorconfig files.
# editorconfig: true

# Input encoding. Detected from the BOM or XML declaration when unset.
# charset: UTF-8

# File extensions linted when walking directories.
# extensions: [".xml", ".xsd", ".xsl", ".pom"]

# Also lint files that look like XML regardless of extension.
# detect_xml: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "target/**"
#   - "node_modules/**"
`

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return jsonTemplate()
	}

	var sb strings.Builder
	sb.WriteString(templateHeader)
	sb.WriteString("\n")
	sb.WriteString(minimalTemplateBody)

	if !opts.Full {
		return []byte(sb.String()), nil
	}

	sb.WriteString(`
# Default severity for rules: error, warning, or info
severity_default: warning

# Backups written next to fixed files
backups:
  enabled: true
  mode: sidecar

# Rule-specific configuration
rules:
`)

	for _, rule := range ruleInfos() {
		fmt.Fprintf(&sb, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&sb, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&sb, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		if rule.CanFix {
			sb.WriteString("  # Auto-fix: yes\n")
		}
		fmt.Fprintf(&sb, "  %s:\n    enabled: %t\n    severity: %s\n", rule.ID, rule.Enabled, rule.Severity)
		sb.WriteString("    # options:\n    #   indent_size: 2\n    #   indent_style: space\n")
	}

	return []byte(sb.String()), nil
}

func ruleInfos() []RuleInfo {
	if DefaultRuleInfoProvider == nil {
		return nil
	}

	rules := DefaultRuleInfoProvider()
	slices.SortFunc(rules, func(a, b RuleInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return rules
}

// jsonTemplate renders the defaults as JSON, which has no comments.
func jsonTemplate() ([]byte, error) {
	rules := make(map[string]any)
	for _, rule := range ruleInfos() {
		rules[rule.ID] = map[string]any{
			"enabled":  rule.Enabled,
			"severity": string(rule.Severity),
		}
	}

	defaults := NewConfig()
	doc := map[string]any{
		"indent": map[string]any{
			"style": defaults.Indent.Style,
			"size":  defaults.Indent.Size,
		},
		"extensions":       DefaultExtensions(),
		"severity_default": defaults.SeverityDefault,
		"backups": map[string]any{
			"enabled": defaults.Backups.Enabled,
			"mode":    defaults.Backups.Mode,
		},
		"rules": rules,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// wrapComment wraps text to maxWidth, continuing lines as indented comments.
func wrapComment(text string, maxWidth int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	lines := []string{words[0]}
	for _, word := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(word) > maxWidth {
			lines = append(lines, word)
			continue
		}
		*last += " " + word
	}

	return strings.Join(lines, "\n  # ")
}
