package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/goxmllint/internal/configloader"
	"github.com/yaklabco/goxmllint/internal/ui/pretty"
)

// helpStyles is the subset of the output palette used by help screens.
type helpStyles struct {
	command    lipgloss.Style
	heading    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	dim        lipgloss.Style
}

func newHelpStyles(s *pretty.Styles) helpStyles {
	return helpStyles{
		command:    s.FilePath,
		heading:    s.SummaryTitle,
		subcommand: s.DiffAdd,
		flag:       s.Info.UnsetBold(),
		dim:        s.Dim,
	}
}

// flagUsageLine matches one pflag usage line: indentation, the flag names
// with an optional type, the padding, and the description.
var flagUsageLine = regexp.MustCompile(`^(\s*)(\S.*?)(\s{2,})(\S.*)$`)

// HelpFormatter renders styled help and usage screens. The color mode is
// read when a screen is rendered, after flags have been parsed.
type HelpFormatter struct {
	colorMode *string
}

// NewHelpFormatter creates a help formatter that follows the --color flag
// bound to colorMode.
func NewHelpFormatter(colorMode *string) *HelpFormatter {
	return &HelpFormatter{colorMode: colorMode}
}

// ApplyToCommand installs the styled help and usage functions on cmd.
// Subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.render(c.OutOrStderr(), "usage", usageTemplate, c)
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.render(c.OutOrStdout(), "help", helpTemplate, c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) render(w io.Writer, name, text string, cmd *cobra.Command) error {
	mode := "auto"
	if h.colorMode != nil && *h.colorMode != "" {
		mode = *h.colorMode
	}
	styles := newHelpStyles(pretty.NewStyles(pretty.IsColorEnabled(mode, w)))

	tmpl, err := template.New(name).Funcs(h.funcs(styles)).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(w, cmd); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func (h *HelpFormatter) funcs(styles helpStyles) template.FuncMap {
	return template.FuncMap{
		"command":    styles.command.Render,
		"heading":    styles.heading.Render,
		"subcommand": styles.subcommand.Render,
		"dim":        styles.dim.Render,
		"flags": func(fs *pflag.FlagSet) string {
			return styleFlagUsages(styles, fs.FlagUsages())
		},
		"environment": func() string {
			return environmentUsage(styles)
		},
		"rpad":  rpad,
		"join":  strings.Join,
		"trim":  trimTrailingWhitespace,
		"isTop": func(c *cobra.Command) bool { return !c.HasParent() },
	}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}
{{- end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]
{{- end }}
{{- if gt (len .Aliases) 0 }}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end }}
{{- if .HasExample }}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end }}
{{- if .HasAvailableSubCommands }}

{{ heading "Commands:" }}
{{- range .Commands }}{{ if or .IsAvailableCommand (eq .Name "help") }}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}
{{- end }}{{ end }}
{{- end }}
{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end }}
{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end }}
{{- if isTop . }}

{{ heading "Environment:" }}
{{ environment }}
{{- end }}
{{- if .HasAvailableSubCommands }}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ trim . }}

{{ end }}` + usageTemplate

// styleFlagUsages colors flag names and dims their type placeholders,
// keeping pflag's column alignment.
func styleFlagUsages(styles helpStyles, usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		parts := flagUsageLine.FindStringSubmatch(line)
		if parts == nil {
			continue
		}
		lines[i] = parts[1] + styleFlagNames(styles, parts[2]) + parts[3] + parts[4]
	}
	return strings.Join(lines, "\n")
}

func styleFlagNames(styles helpStyles, names string) string {
	tokens := strings.Fields(names)
	for i, token := range tokens {
		if !strings.HasPrefix(token, "-") {
			tokens[i] = styles.dim.Render(token)
			continue
		}
		name, comma := strings.CutSuffix(token, ",")
		tokens[i] = styles.flag.Render(name)
		if comma {
			tokens[i] += ","
		}
	}
	return strings.Join(tokens, " ")
}

// environmentUsage lists the GOXMLLINT_* variables the config loader reads.
func environmentUsage(styles helpStyles) string {
	names := configloader.EnvVarNames()
	descriptions := configloader.ListEnvVars()

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+styles.flag.Render(rpad(name, width))+"   "+descriptions[name])
	}
	return strings.Join(lines, "\n")
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
