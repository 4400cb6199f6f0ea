package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/goxmllint/pkg/config"
)

// envVarPrefix is the prefix for all goxmllint environment variables.
const envVarPrefix = "GOXMLLINT_"

// envVar describes one GOXMLLINT_* override.
type envVar struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

// envVars lists the supported environment overrides.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"INDENT_STYLE", "Indentation style: space or tab", func(cfg *config.Config, v string) error {
		if v != cfg.Indent.Style {
			cfg.Indent.Size = 0
		}
		cfg.Indent.Style = v
		return nil
	}},
	{"INDENT_SIZE", "Indentation characters per level", intVar(func(cfg *config.Config, n int) { cfg.Indent.Size = n })},
	{"EDITORCONFIG", "Read .editorconfig files: true or false", boolVar(func(cfg *config.Config, b bool) { cfg.EditorConfig = &b })},
	{"CHARSET", "Force the input encoding, e.g. ISO-8859-1", func(cfg *config.Config, v string) error {
		cfg.Charset = v
		return nil
	}},
	{"EXTENSIONS", "Comma-separated file extensions to lint", func(cfg *config.Config, v string) error {
		cfg.Extensions = parseSliceValue(v)
		return nil
	}},
	{"DETECT_XML", "Detect XML files without a known extension: true or false", boolVar(func(cfg *config.Config, b bool) { cfg.DetectXML = b })},
	{"SEVERITY_DEFAULT", "Default severity: error, warning, or info", func(cfg *config.Config, v string) error {
		cfg.SeverityDefault = v
		return nil
	}},
	{"FIX", "Enable auto-fix: true or false", boolVar(func(cfg *config.Config, b bool) { cfg.Fix = b })},
	{"DRY_RUN", "Dry-run mode: true or false", boolVar(func(cfg *config.Config, b bool) { cfg.DryRun = b })},
	{"JOBS", "Number of parallel workers (0 = auto)", intVar(func(cfg *config.Config, n int) { cfg.Jobs = n })},
	{"FORMAT", "Output format: text, json, sarif, diff, or checkstyle", func(cfg *config.Config, v string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	}},
	{"BACKUPS_ENABLED", "Enable backups when fixing: true or false", boolVar(func(cfg *config.Config, b bool) { cfg.Backups.Enabled = b })},
	{"BACKUPS_MODE", "Backup mode: sidecar or none", func(cfg *config.Config, v string) error {
		cfg.Backups.Mode = v
		return nil
	}},
	{"IGNORE", "Comma-separated list of ignore patterns", func(cfg *config.Config, v string) error {
		cfg.Ignore = parseSliceValue(v)
		return nil
	}},
	{"NO_BACKUPS", "Disable backups: true or false", boolVar(func(cfg *config.Config, b bool) { cfg.NoBackups = b })},
}

func boolVar(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		set(cfg, b)
		return nil
	}
}

func intVar(set func(*config.Config, int)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		set(cfg, n)
		return nil
	}
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with GOXMLLINT_ (e.g., GOXMLLINT_INDENT_SIZE).
// Empty variables are ignored. INDENT_STYLE is applied before INDENT_SIZE.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := envVarPrefix + ev.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}

		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envVars))
	for _, ev := range envVars {
		vars[envVarPrefix+ev.suffix] = ev.description
	}
	return vars
}

// EnvVarNames returns the supported environment variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envVars))
	for _, ev := range envVars {
		names = append(names, envVarPrefix+ev.suffix)
	}
	sort.Strings(names)
	return names
}
