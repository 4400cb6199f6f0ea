package fix_test

import (
	"testing"

	"github.com/yaklabco/goxmllint/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{
			name:    "no edits",
			content: "<a>\n<b/>\n</a>",
			want:    "<a>\n<b/>\n</a>",
		},
		{
			name:    "insert indentation",
			content: "<a>\n<b/>\n</a>",
			edits:   []fix.TextEdit{{StartOffset: 4, EndOffset: 4, NewText: "  "}},
			want:    "<a>\n  <b/>\n</a>",
		},
		{
			name:    "delete indentation",
			content: "<a>\n      <b/>\n</a>",
			edits:   []fix.TextEdit{{StartOffset: 4, EndOffset: 8}},
			want:    "<a>\n  <b/>\n</a>",
		},
		{
			name:    "several lines",
			content: "<a>\n<b>\n<c/>\n</b>\n</a>",
			edits: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "  "},
				{StartOffset: 8, EndOffset: 8, NewText: "    "},
				{StartOffset: 13, EndOffset: 13, NewText: "  "},
			},
			want: "<a>\n  <b>\n    <c/>\n  </b>\n</a>",
		},
		{
			name:    "replace at end",
			content: "<a/>",
			edits:   []fix.TextEdit{{StartOffset: 4, EndOffset: 4, NewText: "\n"}},
			want:    "<a/>\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := string(fix.ApplyEdits([]byte(tc.content), tc.edits))
			if got != tc.want {
				t.Errorf("ApplyEdits() = %q, want %q", got, tc.want)
			}
		})
	}
}
