package lint

import (
	"context"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// Parser turns decoded XML content into a FileSnapshot with its event stream.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts UTF-8 content into a FileSnapshot.
	//
	// The returned snapshot satisfies snapshot.Path == path and
	// bytes.Equal(snapshot.Content, content). Syntax errors are returned
	// without a partial snapshot.
	Parse(ctx context.Context, path string, content []byte) (*xmldoc.FileSnapshot, error)
}

// StyleProvider supplies per-file indentation settings, such as those found
// in .editorconfig files. Zero fields in the result mean "not set".
type StyleProvider interface {
	IndentFor(path string) (config.IndentConfig, error)
}
