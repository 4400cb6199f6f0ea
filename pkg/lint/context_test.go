package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/lint"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

func TestNewRuleContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	file := xmldoc.NewFileSnapshot("a.xml", []byte("<a/>"))
	cfg := config.NewConfig()
	ruleCfg := &config.RuleConfig{}

	rc := lint.NewRuleContext(ctx, file, cfg, ruleCfg)

	assert.Equal(t, ctx, rc.Ctx)
	assert.Same(t, file, rc.File)
	assert.Same(t, cfg, rc.Config)
	assert.Same(t, ruleCfg, rc.RuleConfig)
	assert.Equal(t, "a.xml", rc.Path())
	assert.False(t, rc.Cancelled())
}

func TestRuleContext_NilFile(t *testing.T) {
	t.Parallel()

	rc := lint.NewRuleContext(context.Background(), nil, nil, nil)
	assert.Empty(t, rc.Path())
	assert.False(t, rc.HasOption("indent_size"))
	assert.Equal(t, 2, rc.OptionInt("indent_size", 2))
}

func TestRuleContext_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, lint.NewRuleContext(ctx, nil, nil, nil).Cancelled())
}

func TestRuleContext_Options(t *testing.T) {
	t.Parallel()

	rc := lint.NewRuleContext(context.Background(), nil, nil, &config.RuleConfig{
		Options: map[string]any{
			"yaml_int":   4,
			"json_float": float64(3),
			"style":      "tab",
			"flag":       true,
			"wrong_type": []any{"x"},
		},
	})

	assert.True(t, rc.HasOption("style"))
	assert.False(t, rc.HasOption("missing"))

	assert.Equal(t, 4, rc.OptionInt("yaml_int", 2))
	assert.Equal(t, 3, rc.OptionInt("json_float", 2))
	assert.Equal(t, 2, rc.OptionInt("wrong_type", 2))
	assert.Equal(t, 2, rc.OptionInt("missing", 2))

	assert.Equal(t, "tab", rc.OptionString("style", "space"))
	assert.Equal(t, "space", rc.OptionString("yaml_int", "space"))

	assert.True(t, rc.OptionBool("flag", false))
	assert.False(t, rc.OptionBool("style", false))

	assert.Equal(t, "fallback", rc.Option("missing", "fallback"))
}
