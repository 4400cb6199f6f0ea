// Package config defines the configuration types of goxmllint.
// These are plain data structures; loading and merging live in internal/configloader.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// IndentConfig is the project-wide indentation style.
type IndentConfig struct {
	// Style is "space" or "tab". Empty means space.
	Style string `yaml:"style,omitempty"`

	// Size is the number of indentation characters per level. 0 means 2.
	Size int `yaml:"size,omitempty"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText       OutputFormat = "text"
	FormatJSON       OutputFormat = "json"
	FormatSARIF      OutputFormat = "sarif"
	FormatDiff       OutputFormat = "diff"
	FormatCheckstyle OutputFormat = "checkstyle"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "xml-indent"
	RuleFormatID       RuleFormat = "id"       // "XML001"
	RuleFormatCombined RuleFormat = "combined" // "XML001/xml-indent"
)

// DefaultExtensions are the file extensions linted when walking directories.
func DefaultExtensions() []string {
	return []string{".xml", ".xsd", ".xsl", ".xslt", ".pom", ".svg", ".wsdl", ".xhtml"}
}

// Config is the root configuration structure for goxmllint.
type Config struct {
	// Indent is the indentation style applied to all files unless
	// .editorconfig or rule options say otherwise.
	Indent IndentConfig `yaml:"indent"`

	// EditorConfig enables reading indent_style and indent_size from
	// .editorconfig files. Nil means enabled.
	EditorConfig *bool `yaml:"editorconfig,omitempty"`

	// Charset forces the input encoding. Empty means detect from the byte
	// order mark or XML declaration.
	Charset string `yaml:"charset,omitempty"`

	// Extensions lists file extensions picked up when walking directories.
	Extensions []string `yaml:"extensions,omitempty"`

	// DetectXML also picks up files without a known extension whose
	// name or content identifies them as XML.
	DetectXML bool `yaml:"detect_xml,omitempty"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	Fix          bool         `yaml:"-"`
	DryRun       bool         `yaml:"-"`
	Format       OutputFormat `yaml:"-"`
	RuleFormat   RuleFormat   `yaml:"-"`
	Jobs         int          `yaml:"-"` // 0 means GOMAXPROCS
	EnableRules  []string     `yaml:"-"`
	DisableRules []string     `yaml:"-"`
	FixRules     []string     `yaml:"-"`
	NoBackups    bool         `yaml:"-"`

	// IndentOverride holds indentation given on the command line. It is
	// applied after .editorconfig and rule options, unlike Indent.
	IndentOverride IndentConfig `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Indent:          IndentConfig{Style: "space", Size: 2},
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
	}
}

// UseEditorConfig reports whether .editorconfig files are consulted.
func (c *Config) UseEditorConfig() bool {
	return c == nil || c.EditorConfig == nil || *c.EditorConfig
}

// FileExtensions returns the configured extensions or DefaultExtensions.
func (c *Config) FileExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return DefaultExtensions()
	}
	return c.Extensions
}
