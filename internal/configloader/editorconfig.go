package configloader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/editorconfig/editorconfig-core-go/v2"

	"github.com/yaklabco/goxmllint/pkg/config"
)

const (
	styleSpace = "space"
	styleTab   = "tab"
)

// EditorConfigStyles looks up indent_style and indent_size for files from
// their .editorconfig sections. It is safe for concurrent use and caches one
// result per file, since fixing lints the same file several times.
type EditorConfigStyles struct {
	mu    sync.Mutex
	cache map[string]config.IndentConfig

	// lookup is replaced in tests.
	lookup func(path string) (*editorconfig.Definition, error)
}

// NewEditorConfigStyles returns a style provider reading .editorconfig files.
func NewEditorConfigStyles() *EditorConfigStyles {
	return &EditorConfigStyles{
		cache:  make(map[string]config.IndentConfig),
		lookup: editorconfig.GetDefinitionForFilename,
	}
}

// IndentFor returns the indentation the .editorconfig files above path
// declare. Unset or unrecognized properties are left zero. Relative paths
// resolve against the working directory.
func (s *EditorConfigStyles) IndentFor(path string) (config.IndentConfig, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return config.IndentConfig{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[absPath]; ok {
		return cached, nil
	}

	def, err := s.lookup(absPath)
	if err != nil {
		return config.IndentConfig{}, fmt.Errorf("editorconfig for %s: %w", path, err)
	}

	style := indentFromDefinition(def)
	s.cache[absPath] = style
	return style, nil
}

// indentFromDefinition maps editorconfig properties onto an IndentConfig.
// indent_size = tab defers to tab_width.
func indentFromDefinition(def *editorconfig.Definition) config.IndentConfig {
	var ic config.IndentConfig
	if def == nil {
		return ic
	}

	switch def.IndentStyle {
	case styleSpace, styleTab:
		ic.Style = def.IndentStyle
	}

	switch def.IndentSize {
	case "", "unset":
	case styleTab:
		if def.TabWidth > 0 && ic.Style != styleTab {
			ic.Size = def.TabWidth
		}
	default:
		if n, err := strconv.Atoi(def.IndentSize); err == nil && n > 0 {
			ic.Size = n
		}
	}

	return ic
}
