package reporter

import (
	"fmt"

	"github.com/yaklabco/goxmllint/pkg/config"
)

// Format represents an output format.
type Format = config.OutputFormat

// Output formats supported by the reporter.
const (
	FormatText       = config.FormatText
	FormatJSON       = config.FormatJSON
	FormatSARIF      = config.FormatSARIF
	FormatDiff       = config.FormatDiff
	FormatCheckstyle = config.FormatCheckstyle
)

// ParseFormat parses a format string, returning an error for unknown formats.
// The empty string selects text.
func ParseFormat(formatStr string) (Format, error) {
	switch Format(formatStr) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatSARIF, FormatDiff, FormatCheckstyle:
		return Format(formatStr), nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json, sarif, diff, checkstyle", formatStr)
	}
}
