// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFix            = "fix"
	FieldDryRun         = "dry_run"
	FieldJobs           = "jobs"
	FieldConfig         = "config"
	FieldIndentStyle    = "indent_style"
	FieldIndentSize     = "indent_size"
	FieldIndentOverride = "indent_override"
	FieldSource         = "source"

	// Document fields.
	FieldEncoding = "encoding"
	FieldEdits    = "edits"
	FieldLine     = "line"
	FieldElement  = "element"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesModified    = "files_modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
	FieldGo      = "go"
	FieldRules   = "rules"

	// Rule fields.
	FieldRule        = "rule"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
