package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmllint/pkg/fsutil"
)

func writeXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := writeXML(t, "<a>\n  <b/>\n</a>\n")

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "<a>\n  <b/>\n</a>\n", string(content))
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, os.FileMode(0o600), info.Mode.Perm())
	assert.NotZero(t, info.Hash)
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(dir, "missing.xml"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = fsutil.ReadFile(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fsutil.ReadFile(ctx, filepath.Join(dir, "missing.xml"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change func(t *testing.T, path string)
		deep   bool
		want   bool
	}{
		{"unchanged quick", func(*testing.T, string) {}, false, false},
		{"unchanged deep", func(*testing.T, string) {}, true, false},
		{"deleted", func(t *testing.T, path string) {
			require.NoError(t, os.Remove(path))
		}, false, true},
		{"size changed", func(t *testing.T, path string) {
			require.NoError(t, os.WriteFile(path, []byte("<a/>\n<!-- more -->\n"), 0o600))
		}, false, true},
		{"same size same time quick", func(t *testing.T, path string) {
			rewriteKeepingTime(t, path, "<z/>\n")
		}, false, false},
		{"same size same time deep", func(t *testing.T, path string) {
			rewriteKeepingTime(t, path, "<z/>\n")
		}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeXML(t, "<a/>\n")
			_, info, err := fsutil.ReadFile(context.Background(), path)
			require.NoError(t, err)

			tt.change(t, path)

			got, err := fsutil.CheckModified(context.Background(), info, tt.deep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func rewriteKeepingTime(t *testing.T, path, content string) {
	t.Helper()
	stat, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, os.Chtimes(path, time.Now(), stat.ModTime()))
}

func TestCheckModified_NilInfo(t *testing.T) {
	t.Parallel()

	_, err := fsutil.CheckModified(context.Background(), nil, true)
	require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}
