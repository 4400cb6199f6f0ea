package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/lint"
	"github.com/yaklabco/goxmllint/pkg/lint/rules"
	"github.com/yaklabco/goxmllint/pkg/parser/xmlparser"
	"github.com/yaklabco/goxmllint/pkg/runner"
)

const (
	cleanDoc      = "<a>\n  <b/>\n</a>\n"
	misindented   = "<a>\n<b>\n</b>\n</a>\n"
	unbalancedDoc = "<a>\n</a>\n</b>\n"
)

func newRunner() *runner.Runner {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return runner.New(lint.NewPipeline(lint.NewEngine(xmlparser.New(), registry)))
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"README.md": "# hi\n"})

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasIssues())
	assert.NoError(t, result.Err())
}

func TestRunner_Run_Lint(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"clean.xml":        cleanDoc,
		"src/bad.xml":      misindented,
		"src/broken.xsd":   unbalancedDoc,
		"docs/readme.html": misindented,
	})

	cfg := config.NewConfig()
	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       2,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, filepath.Join(dir, "clean.xml"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "src", "bad.xml"), result.Files[1].Path)
	assert.Equal(t, filepath.Join(dir, "src", "broken.xsd"), result.Files[2].Path)

	stats := result.Stats
	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesErrored)
	assert.Equal(t, 1, stats.FilesUnbalanced)
	assert.Equal(t, 1, stats.FilesWithIssues)
	assert.Equal(t, 2, stats.DiagnosticsTotal)
	assert.Equal(t, 2, stats.DiagnosticsFixable)
	assert.Equal(t, 2, stats.DiagnosticsBySeverity[config.SeverityWarning])
	assert.Zero(t, stats.FilesModified)

	assert.True(t, result.HasIssues())
	assert.False(t, result.HasFailures())

	require.Error(t, result.Err())
	assert.ErrorIs(t, result.Err(), lint.ErrRuleFailure)
	assert.Contains(t, result.Err().Error(), "broken.xsd")

	brokenPath := filepath.Join(dir, "src", "broken.xsd")
	require.Error(t, result.Files[2].Error)
	assert.Equal(t, 1, strings.Count(result.Files[2].Error.Error(), brokenPath),
		"the path is named once: %v", result.Files[2].Error)

	content, err := os.ReadFile(filepath.Join(dir, "src", "bad.xml"))
	require.NoError(t, err)
	assert.Equal(t, misindented, string(content), "lint mode never writes")
}

func TestRunner_Run_Fix(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"bad.xml": misindented})

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.NoBackups = true

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Equal(t, 2, result.Stats.DiagnosticsFixed)

	content, err := os.ReadFile(filepath.Join(dir, "bad.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<a>\n  <b>\n  </b>\n</a>\n", string(content))
}

func TestRunner_Run_SerialAndParallelAgree(t *testing.T) {
	t.Parallel()

	files := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files[name+".xml"] = misindented
		files["clean/"+name+".xml"] = cleanDoc
	}
	dir := writeTree(t, files)

	run := func(jobs int) *runner.Result {
		result, err := newRunner().Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		require.NoError(t, err)
		return result
	}

	serial, parallel := run(1), run(8)
	assert.Equal(t, serial.Stats, parallel.Stats)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.Equal(t, serial.Files[i].Result.Diagnostics, parallel.Files[i].Result.Diagnostics)
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"a.xml": cleanDoc})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{WorkingDir: dir, Config: config.NewConfig()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Extensions = []string{".xml"}
	cfg.DetectXML = true
	cfg.Ignore = []string{"target/**"}
	cfg.Jobs = 3

	opts := runner.OptionsFromConfig(cfg, []string{"src"})
	assert.Equal(t, []string{"src"}, opts.Paths)
	assert.Equal(t, []string{".xml"}, opts.Extensions)
	assert.True(t, opts.DetectXML)
	assert.Equal(t, []string{"target/**"}, opts.ExcludeGlobs)
	assert.Equal(t, 3, opts.Jobs)
	assert.Same(t, cfg, opts.Config)
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasFailures())
	assert.NoError(t, result.Err())
}
