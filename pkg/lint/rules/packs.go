package rules

import "github.com/yaklabco/goxmllint/pkg/config"

// Pack describes a named group of rule defaults for a particular use case.
// Packs are configuration fragments used as starting points for
// .goxmllint.yml files.
type Pack struct {
	// Name is the short identifier for the pack (e.g., "default", "maven").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string

	// Rules contains rule configurations keyed by rule ID.
	Rules map[string]config.RuleConfig
}

// DefaultPack indents with two spaces and reports warnings.
func DefaultPack() Pack {
	return Pack{
		Name:        "default",
		Description: "Two-space indentation, reported as warnings",
		Rules: map[string]config.RuleConfig{
			"XML001": indentRule("warning", "space", 2),
		},
	}
}

// StrictPack is DefaultPack with violations reported as errors.
func StrictPack() Pack {
	return Pack{
		Name:        "strict",
		Description: "Two-space indentation, reported as errors",
		Rules: map[string]config.RuleConfig{
			"XML001": indentRule("error", "space", 2),
		},
	}
}

// MavenPack matches the four-space style of Maven POMs and Java tooling.
func MavenPack() Pack {
	return Pack{
		Name:        "maven",
		Description: "Four-space indentation as used by Maven and most Java projects",
		Rules: map[string]config.RuleConfig{
			"XML001": indentRule("warning", "space", 4),
		},
	}
}

// TabsPack indents with one tab per level.
func TabsPack() Pack {
	return Pack{
		Name:        "tabs",
		Description: "One tab per nesting level",
		Rules: map[string]config.RuleConfig{
			"XML001": indentRule("warning", "tab", 1),
		},
	}
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		DefaultPack(),
		StrictPack(),
		MavenPack(),
		TabsPack(),
	}
}

// PackByName returns a pack by name, or nil if not found.
func PackByName(name string) *Pack {
	for _, p := range Packs() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

// PackNames returns the names of all available packs.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}

// indentRule enables XML001 with the given severity and style.
func indentRule(sev, style string, size int) config.RuleConfig {
	enabled := true
	return config.RuleConfig{
		Enabled:  &enabled,
		Severity: &sev,
		Options: map[string]any{
			OptionIndentStyle: style,
			OptionIndentSize:  size,
		},
	}
}
