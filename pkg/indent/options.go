package indent

import (
	"errors"
	"fmt"
)

// Indentation styles as named by .editorconfig.
const (
	StyleSpace = "space"
	StyleTab   = "tab"
)

// DefaultSize is the indentation width used when nothing is configured.
const DefaultSize = 2

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid indentation options")

// Options configures a Validator.
type Options struct {
	// IndentChar is inserted by fixes: ' ' or '\t'.
	IndentChar rune

	// IndentSize is the number of IndentChar per nesting level.
	IndentSize int
}

// DefaultOptions returns two-space indentation.
func DefaultOptions() Options {
	return Options{IndentChar: ' ', IndentSize: DefaultSize}
}

// OptionsForStyle builds Options from a style name ("space" or "tab") and size.
// An empty style means spaces. A non-positive size means one tab or
// DefaultSize spaces.
func OptionsForStyle(style string, size int) (Options, error) {
	opts := DefaultOptions()

	switch style {
	case "", StyleSpace:
	case StyleTab:
		opts.IndentChar = '\t'
		opts.IndentSize = 1
	default:
		return Options{}, fmt.Errorf("%w: unknown indent style %q", ErrInvalidOptions, style)
	}

	if size > 0 {
		opts.IndentSize = size
	}

	return opts, nil
}

// Style returns the .editorconfig style name of the options.
func (o Options) Style() string {
	if o.IndentChar == '\t' {
		return StyleTab
	}
	return StyleSpace
}

// Validate reports unusable options.
func (o Options) Validate() error {
	if o.IndentChar != ' ' && o.IndentChar != '\t' {
		return fmt.Errorf("%w: indent char %q is not a space or a tab", ErrInvalidOptions, o.IndentChar)
	}
	if o.IndentSize <= 0 {
		return fmt.Errorf("%w: indent size %d must be positive", ErrInvalidOptions, o.IndentSize)
	}
	return nil
}
