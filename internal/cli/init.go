package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goxmllint/internal/configloader"
	"github.com/yaklabco/goxmllint/internal/logging"
	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/lint/rules"
)

const (
	formatYAML = "yaml"

	defaultConfigYAML = ".goxmllint.yml"
	defaultConfigJSON = ".goxmllint.json"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
	pack   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new goxmllint configuration file",
		Long: `Create a new .goxmllint.yml configuration file in the current directory
with sensible defaults. The file can be customized to change the indentation
style, rule severities, and which files are linted.

Examples:
  goxmllint init                      Create minimal .goxmllint.yml
  goxmllint init --full               Document every rule and option
  goxmllint init --pack maven         Start from the four-space Maven pack
  goxmllint init --format json        Create .goxmllint.json instead
  goxmllint init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.InOrStdin(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all rules documented")
	cmd.Flags().StringVar(&flags.format, "format", formatYAML, "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .goxmllint.yml or .goxmllint.json)")
	cmd.Flags().StringVar(&flags.pack, "pack", "",
		"Rule pack to start from: "+strings.Join(rules.PackNames(), ", "))

	return cmd
}

func runInit(in io.Reader, out io.Writer, flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.format != formatYAML && flags.format != formatJSON {
		return fmt.Errorf("invalid format %q: must be yaml or json", flags.format)
	}

	var pack *rules.Pack
	if flags.pack != "" {
		if pack = rules.PackByName(flags.pack); pack == nil {
			return fmt.Errorf("unknown pack %q; available packs: %s",
				flags.pack, strings.Join(rules.PackNames(), ", "))
		}
		if flags.format != formatYAML || flags.full {
			return errors.New("--pack can only be used with the minimal yaml template")
		}
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigYAML
		if flags.format == formatJSON {
			outputPath = defaultConfigJSON
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if pack != nil {
		block, err := packBlock(pack)
		if err != nil {
			return err
		}
		content = append(content, block...)
	}

	overwrite := flags.force
	if !overwrite && fileExists(absPath) {
		if !isInteractive(in) {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		overwrite, err = promptOverwrite(in, out, outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
			return nil
		}
	}

	if err := configloader.WriteConfigFile(absPath, content, overwrite); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if pack != nil {
		logger.Info("rules configured from pack", logging.FieldName, pack.Name)
	}
	logger.Info("run 'goxmllint rules' to see all available rules")

	return nil
}

// packRule is config.RuleConfig without the unset fields.
type packRule struct {
	Enabled  *bool          `yaml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// packBlock renders a pack as a commented rules: section.
func packBlock(pack *rules.Pack) ([]byte, error) {
	doc := struct {
		Rules map[string]packRule `yaml:"rules"`
	}{Rules: make(map[string]packRule, len(pack.Rules))}

	for id, rc := range pack.Rules {
		doc.Rules[id] = packRule{Enabled: rc.Enabled, Severity: rc.Severity, Options: rc.Options}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal pack %s: %w", pack.Name, err)
	}

	header := fmt.Sprintf("\n# Rule pack %q: %s\n", pack.Name, pack.Description)
	return append([]byte(header), data...), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// isInteractive reports whether in is a terminal.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func promptOverwrite(in io.Reader, out io.Writer, path string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", path); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
