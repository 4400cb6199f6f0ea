package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmllint/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantErr string
	}{
		{name: "empty", edits: nil},
		{name: "valid", edits: []fix.TextEdit{{StartOffset: 0, EndOffset: 10}}},
		{name: "negative start", edits: []fix.TextEdit{{StartOffset: -1, EndOffset: 2}}, wantErr: "start offset is negative"},
		{name: "end before start", edits: []fix.TextEdit{{StartOffset: 5, EndOffset: 3}}, wantErr: "before start offset"},
		{name: "end past content", edits: []fix.TextEdit{{StartOffset: 5, EndOffset: 11}}, wantErr: "exceeds content length 10"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tc.edits, 10)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *fix.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	t.Run("sorts by offset", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			{StartOffset: 8, EndOffset: 8, NewText: "  "},
			{StartOffset: 2, EndOffset: 4},
		}

		got, err := fix.PrepareEdits(edits, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, got[0].StartOffset)
		assert.Equal(t, 8, got[1].StartOffset)
		assert.Equal(t, 8, edits[0].StartOffset, "input must not be reordered")
	})

	t.Run("overlap is a conflict", func(t *testing.T) {
		t.Parallel()

		_, err := fix.PrepareEdits([]fix.TextEdit{
			{StartOffset: 0, EndOffset: 4},
			{StartOffset: 2, EndOffset: 6, NewText: "x"},
		}, 10)

		var cErr *fix.ConflictError
		require.ErrorAs(t, err, &cErr)
	})

	t.Run("two insertions at one offset conflict", func(t *testing.T) {
		t.Parallel()

		_, err := fix.PrepareEdits([]fix.TextEdit{
			{StartOffset: 3, EndOffset: 3, NewText: " "},
			{StartOffset: 3, EndOffset: 3, NewText: "\t"},
		}, 10)

		var cErr *fix.ConflictError
		require.ErrorAs(t, err, &cErr)
	})

	t.Run("adjacent edits are fine", func(t *testing.T) {
		t.Parallel()

		got, err := fix.PrepareEdits([]fix.TextEdit{
			{StartOffset: 2, EndOffset: 4},
			{StartOffset: 4, EndOffset: 4, NewText: " "},
		}, 10)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestPrepareEditsFiltered(t *testing.T) {
	t.Parallel()

	t.Run("merges overlapping deletions", func(t *testing.T) {
		t.Parallel()

		accepted, skipped, merged, err := fix.PrepareEditsFiltered([]fix.TextEdit{
			{StartOffset: 4, EndOffset: 8},
			{StartOffset: 2, EndOffset: 5},
		}, 10)

		require.NoError(t, err)
		assert.Equal(t, []fix.TextEdit{{StartOffset: 2, EndOffset: 8}}, accepted)
		assert.Empty(t, skipped)
		assert.Equal(t, 1, merged)
	})

	t.Run("skips later conflicting insertion", func(t *testing.T) {
		t.Parallel()

		accepted, skipped, merged, err := fix.PrepareEditsFiltered([]fix.TextEdit{
			{StartOffset: 3, EndOffset: 3, NewText: "  "},
			{StartOffset: 3, EndOffset: 3, NewText: "    "},
			{StartOffset: 7, EndOffset: 7, NewText: "  "},
		}, 10)

		require.NoError(t, err)
		assert.Equal(t, []fix.TextEdit{
			{StartOffset: 3, EndOffset: 3, NewText: "  "},
			{StartOffset: 7, EndOffset: 7, NewText: "  "},
		}, accepted)
		assert.Equal(t, []fix.TextEdit{{StartOffset: 3, EndOffset: 3, NewText: "    "}}, skipped)
		assert.Zero(t, merged)
	})

	t.Run("validation errors still fail", func(t *testing.T) {
		t.Parallel()

		_, _, _, err := fix.PrepareEditsFiltered([]fix.TextEdit{{StartOffset: 0, EndOffset: 20}}, 10)
		require.Error(t, err)
	})
}
