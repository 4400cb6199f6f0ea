package configloader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmllint/pkg/config"
)

func TestMergeIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     config.IndentConfig
		override config.IndentConfig
		want     config.IndentConfig
	}{
		{"empty override", config.IndentConfig{Style: "space", Size: 2}, config.IndentConfig{}, config.IndentConfig{Style: "space", Size: 2}},
		{"size only", config.IndentConfig{Style: "space", Size: 2}, config.IndentConfig{Size: 4}, config.IndentConfig{Style: "space", Size: 4}},
		{"style switch drops size", config.IndentConfig{Style: "space", Size: 2}, config.IndentConfig{Style: "tab"}, config.IndentConfig{Style: "tab"}},
		{"same style keeps size", config.IndentConfig{Style: "space", Size: 4}, config.IndentConfig{Style: "space"}, config.IndentConfig{Style: "space", Size: 4}},
		{"style and size", config.IndentConfig{Style: "space", Size: 2}, config.IndentConfig{Style: "tab", Size: 2}, config.IndentConfig{Style: "tab", Size: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mergeIndent(tt.base, tt.override))
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	disabled := false
	errSeverity := "error"

	base := config.NewConfig()
	base.Rules["XML001"] = config.RuleConfig{
		Severity: &errSeverity,
		Options:  map[string]any{"indent_size": 4},
	}

	override := &config.Config{
		EditorConfig:   &disabled,
		Charset:        "UTF-16",
		Extensions:     []string{".xml"},
		DetectXML:      true,
		IndentOverride: config.IndentConfig{Size: 3},
		Rules: map[string]config.RuleConfig{
			"XML001": {Options: map[string]any{"indent_style": "tab"}},
		},
	}

	merged := merge(base, override)
	require.NotNil(t, merged)

	assert.False(t, merged.UseEditorConfig())
	assert.Equal(t, "UTF-16", merged.Charset)
	assert.Equal(t, []string{".xml"}, merged.Extensions)
	assert.True(t, merged.DetectXML)
	assert.Equal(t, config.IndentConfig{Style: "space", Size: 2}, merged.Indent)
	assert.Equal(t, config.IndentConfig{Size: 3}, merged.IndentOverride, "flags stay a separate layer")

	rule := merged.Rules["XML001"]
	assert.Equal(t, &errSeverity, rule.Severity)
	if diff := cmp.Diff(map[string]any{"indent_size": 4, "indent_style": "tab"}, rule.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	// The base options map is not modified.
	assert.Len(t, base.Rules["XML001"].Options, 1)

	// Overriding the EditorConfig pointer must not alias the override.
	disabled = true
	assert.False(t, merged.UseEditorConfig())
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Indent: config.IndentConfig{Size: 8}},
		&config.Config{SeverityDefault: "error"},
		nil,
	)
	assert.Equal(t, 8, merged.Indent.Size)
	assert.Equal(t, "error", merged.SeverityDefault)
}
