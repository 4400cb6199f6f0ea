package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmllint/pkg/fix"
)

func TestGenerateDiff_NoChanges(t *testing.T) {
	t.Parallel()

	assert.Nil(t, fix.GenerateDiff("a.xml", nil, nil))

	content := []byte("<a>\n  <b/>\n</a>\n")
	diff := fix.GenerateDiff("a.xml", content, content)
	assert.Nil(t, diff)
	assert.False(t, diff.HasChanges())
	assert.Empty(t, diff.String())
	assert.Empty(t, diff.FullString())
}

func TestGenerateDiff_Reindent(t *testing.T) {
	t.Parallel()

	original := []byte("<a>\n<b>\n</b>\n</a>\n")
	modified := []byte("<a>\n  <b>\n  </b>\n</a>\n")

	diff := fix.GenerateDiff("a.xml", original, modified)
	require.NotNil(t, diff)

	want := "--- a/a.xml\n" +
		"+++ b/a.xml\n" +
		"@@ -1,4 +1,4 @@\n" +
		" <a>\n" +
		"-<b>\n" +
		"-</b>\n" +
		"+  <b>\n" +
		"+  </b>\n" +
		" </a>\n"

	assert.Equal(t, want, diff.String())
	assert.Equal(t, 2, diff.Additions)
	assert.Equal(t, 2, diff.Deletions)
	assert.Equal(t, "diff --git a/a.xml b/a.xml\n"+want, diff.FullString())
}

func TestGenerateDiff_SeparateHunks(t *testing.T) {
	t.Parallel()

	lines := []string{"<r>", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "</r>"}
	original := []byte{}
	modified := []byte{}
	for idx, line := range lines {
		original = append(original, line+"\n"...)
		if idx == 1 || idx == 10 {
			line = "  " + line
		}
		modified = append(modified, line+"\n"...)
	}

	diff := fix.GenerateDiff("r.xml", original, modified)
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 2)

	first := diff.Hunks[0]
	assert.Equal(t, 1, first.OriginalStart)
	assert.Equal(t, 5, first.OriginalCount)

	second := diff.Hunks[1]
	assert.Equal(t, 8, second.OriginalStart)
	assert.Equal(t, 5, second.OriginalCount)
	assert.Equal(t, 8, second.ModifiedStart)
}

func TestGenerateDiff_CloseChangesShareHunk(t *testing.T) {
	t.Parallel()

	original := []byte("a\nb\nc\nd\ne\n")
	modified := []byte("a\nB\nc\nD\ne\n")

	diff := fix.GenerateDiff("x.xml", original, modified)
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 1)
	assert.Equal(t, 5, diff.Hunks[0].OriginalCount)
	assert.Equal(t, 5, diff.Hunks[0].ModifiedCount)
}

func TestGenerateDiff_AddedLines(t *testing.T) {
	t.Parallel()

	diff := fix.GenerateDiff("new.xml", nil, []byte("<a/>\n"))
	require.NotNil(t, diff)
	assert.Equal(t, 1, diff.Additions)
	assert.Contains(t, diff.String(), "@@ -1,0 +1,1 @@\n+<a/>\n")
}
