package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/indent"
	"github.com/yaklabco/goxmllint/pkg/lint"
	"github.com/yaklabco/goxmllint/pkg/runner"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.XML001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownSeverities = map[string]bool{
	"error":   true,
	"warning": true,
	"info":    true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:       true,
	config.FormatJSON:       true,
	config.FormatSARIF:      true,
	config.FormatDiff:       true,
	config.FormatCheckstyle: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	addError := func(field string, value any, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf(format, args...),
		})
	}

	validateIndent(cfg.Indent, "indent.style", "indent.size", addError)
	validateIndent(cfg.IndentOverride, "--indent-style", "--indent-size", addError)

	if cfg.Charset != "" {
		if _, err := xmldoc.CanonicalEncoding(cfg.Charset); err != nil {
			addError("charset", cfg.Charset, "%v", err)
		}
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			addError(fmt.Sprintf("extensions[%d]", i), ext, "extension %q must start with a dot", ext)
		}
	}

	if cfg.SeverityDefault != "" && !knownSeverities[cfg.SeverityDefault] {
		addError("severity_default", cfg.SeverityDefault,
			"invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault)
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		addError("format", cfg.Format,
			"invalid format %q; must be one of: text, json, sarif, diff, checkstyle", cfg.Format)
	}

	if cfg.Jobs < 0 {
		addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Backups.Mode != "" && !knownBackupModes[cfg.Backups.Mode] {
		addError("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	validateRules(cfg, result, addError)
	validateIgnorePatterns(cfg, addError)

	return result
}

type addErrorFunc func(field string, value any, format string, args ...any)

func validateIndent(ic config.IndentConfig, styleField, sizeField string, addError addErrorFunc) {
	if ic.Size < 0 {
		addError(sizeField, ic.Size, "indent size must be >= 0")
	}
	if _, err := indent.OptionsForStyle(ic.Style, ic.Size); err != nil {
		addError(styleField, ic.Style, "invalid indent style %q; must be one of: space, tab", ic.Style)
	}
}

// validateRules checks rule configurations for errors and warnings.
func validateRules(cfg *config.Config, result *ValidationResult, addError addErrorFunc) {
	registry := lint.DefaultRegistry

	for ruleID, ruleCfg := range cfg.Rules {
		if _, exists := registry.Get(ruleID); !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleID,
				Value:   ruleID,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
			})
		}

		if ruleCfg.Severity != nil && !knownSeverities[*ruleCfg.Severity] {
			addError("rules."+ruleID+".severity", *ruleCfg.Severity,
				"invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity)
		}

		validateIndentOptions(ruleID, ruleCfg.Options, addError)
	}
}

// validateIndentOptions checks indent_style and indent_size rule options.
func validateIndentOptions(ruleID string, options map[string]any, addError addErrorFunc) {
	field := "rules." + ruleID + ".options"

	var ic config.IndentConfig
	if raw, ok := options["indent_style"]; ok {
		style, isString := raw.(string)
		if !isString {
			addError(field+".indent_style", raw, "indent_style must be a string")
			return
		}
		ic.Style = style
	}
	if raw, ok := options["indent_size"]; ok {
		switch size := raw.(type) {
		case int:
			ic.Size = size
		case float64:
			ic.Size = int(size)
		default:
			addError(field+".indent_size", raw, "indent_size must be an integer")
			return
		}
	}

	validateIndent(ic, field+".indent_style", field+".indent_size", addError)
}

// validateIgnorePatterns checks that ignore patterns compile the way
// discovery compiles them.
func validateIgnorePatterns(cfg *config.Config, addError addErrorFunc) {
	for i, pattern := range cfg.Ignore {
		if _, err := runner.CompileGlobs([]string{pattern}); err != nil {
			addError(fmt.Sprintf("ignore[%d]", i), pattern, "%v", err)
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return knownSeverities[s]
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return knownBackupModes[mode]
}
