package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goxmllint/internal/configloader"
	"github.com/yaklabco/goxmllint/internal/logging"
	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/lint"
	_ "github.com/yaklabco/goxmllint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/goxmllint/pkg/parser/xmlparser"
	"github.com/yaklabco/goxmllint/pkg/reporter"
	"github.com/yaklabco/goxmllint/pkg/runner"
)

type lintFlags struct {
	format         string
	indentStyle    string
	indentSize     int
	ruleFormat     string
	extensions     []string
	ignore         []string
	enable         []string
	disable        []string
	fixRules       []string
	noEditorConfig bool
	strict         bool
	noContext      bool
	compact        bool
}

func newLintCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check XML indentation",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags, info)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Check that XML elements are indented consistently.

By default, lints .xml, .xsd, .xsl, .xslt, .pom, .svg, .wsdl and .xhtml files
in the current directory and subdirectories. Specify paths to lint specific
files or directories.

Examples:
  goxmllint lint                        # Lint current directory
  goxmllint lint pom.xml src/           # Lint a file and a directory
  goxmllint lint --indent-size 4        # Expect four spaces per level
  goxmllint lint --indent-style tab     # Expect one tab per level
  goxmllint lint --fix                  # Lint and fix indentation
  goxmllint lint --fix --dry-run        # Show fixes as a diff without writing
  goxmllint lint --format checkstyle     # Checkstyle XML for CI
  goxmllint lint --strict               # Fail on warnings`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags, info BuildInfo) error {
	logger := logging.Default()

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if changed("indent-style") {
		cfg.IndentOverride.Style = flags.indentStyle
	}
	if changed("indent-size") {
		cfg.IndentOverride.Size = flags.indentSize
	}
	if changed("no-editorconfig") {
		enabled := !flags.noEditorConfig
		cfg.EditorConfig = &enabled
	}
	cfg.Extensions = flags.extensions
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.FixRules = flags.fixRules

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	finalCfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	logger.Debug("configuration loaded",
		logging.FieldFiles, loadResult.LoadedFrom,
		logging.FieldIndentStyle, finalCfg.Indent.Style,
		logging.FieldIndentSize, finalCfg.Indent.Size,
		logging.FieldIndentOverride, finalCfg.IndentOverride,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	engine := lint.NewEngine(xmlparser.New(), lint.DefaultRegistry)
	if finalCfg.UseEditorConfig() {
		engine.Styles = configloader.NewEditorConfigStyles()
	}

	lintRunner := runner.New(lint.NewPipeline(engine))

	runOpts := runner.OptionsFromConfig(finalCfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return errorForExitCode(ExitCodeFromResult(result, flags.strict))
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	fs := cmd.Flags()

	fs.BoolVar(&cfg.Fix, "fix", false, "automatically fix indentation")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	fs.StringVar(&flags.format, "format", "text", "output format: text, json, sarif, diff, checkstyle")
	fs.IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	fs.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	fs.StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	fs.StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	fs.StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rule IDs")
	fs.BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")

	fs.IntVar(&flags.indentSize, "indent-size", 0, "indentation characters per nesting level")
	fs.StringVar(&flags.indentStyle, "indent-style", "", "indentation style: space or tab")
	fs.BoolVar(&flags.noEditorConfig, "no-editorconfig", false, "ignore .editorconfig files")
	fs.StringVar(&cfg.Charset, "charset", "", "force the input encoding (e.g. ISO-8859-1)")
	fs.StringSliceVar(&flags.extensions, "extensions", nil, "file extensions to lint (e.g. .xml,.pom)")
	fs.BoolVar(&cfg.DetectXML, "detect-xml", false, "also lint files detected as XML by name or content")

	fs.BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	fs.BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	fs.BoolVar(&flags.compact, "compact", false, "use compact output format")
	fs.StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
}
