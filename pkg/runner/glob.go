package runner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Globs is a compiled set of path patterns. "*" stays within one path
// segment and "**" crosses segments. Patterns without a slash also match
// the base name, so "*.xsd" matches schemas at any depth.
type Globs struct {
	patterns []glob.Glob
	baseOnly []bool
}

// CompileGlobs compiles patterns. An invalid pattern is an error.
func CompileGlobs(patterns []string) (*Globs, error) {
	globs := &Globs{}
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		globs.patterns = append(globs.patterns, compiled)
		globs.baseOnly = append(globs.baseOnly, !strings.Contains(pattern, "/"))
	}
	return globs, nil
}

// Empty reports whether there are no patterns.
func (g *Globs) Empty() bool {
	return g == nil || len(g.patterns) == 0
}

// Match reports whether a slash- or OS-separated relative path matches any pattern.
func (g *Globs) Match(relPath string) bool {
	if g.Empty() {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	base := path.Base(relPath)
	for i, pattern := range g.patterns {
		if pattern.Match(relPath) || (g.baseOnly[i] && pattern.Match(base)) {
			return true
		}
	}
	return false
}

// MatchDir reports whether a directory and everything below it is excluded.
// "vendor/**" excludes the vendor directory itself.
func (g *Globs) MatchDir(relPath string) bool {
	return g.Match(relPath) || g.Match(filepath.ToSlash(relPath)+"/")
}
