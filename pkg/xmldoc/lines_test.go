package xmldoc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []xmldoc.LineInfo
	}{
		{name: "empty", content: "", want: []xmldoc.LineInfo{}},
		{
			name:    "single tag without newline",
			content: "<a/>",
			want:    []xmldoc.LineInfo{{StartOffset: 0, NewlineStart: 4, EndOffset: 4}},
		},
		{
			name:    "nested LF",
			content: "<a>\n  <b/>\n</a>",
			want: []xmldoc.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 10, EndOffset: 11},
				{StartOffset: 11, NewlineStart: 15, EndOffset: 15},
			},
		},
		{
			name:    "nested CRLF with trailing newline",
			content: "<a>\r\n</a>\r\n",
			want: []xmldoc.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 5},
				{StartOffset: 5, NewlineStart: 9, EndOffset: 11},
				{StartOffset: 11, NewlineStart: 11, EndOffset: 11},
			},
		},
		{
			name:    "lone CR is not a terminator",
			content: "<a>\r</a>",
			want:    []xmldoc.LineInfo{{StartOffset: 0, NewlineStart: 8, EndOffset: 8}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := xmldoc.BuildLines([]byte(tc.content))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileSnapshot_LineAt(t *testing.T) {
	t.Parallel()

	snapshot := xmldoc.NewFileSnapshot("test.xml", []byte("<a>\n  <b/>\n</a>"))

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{"start of file", 0, 1, 1},
		{"newline of line 1", 3, 1, 4},
		{"indent of line 2", 4, 2, 1},
		{"tag on line 2", 6, 2, 3},
		{"start of line 3", 11, 3, 1},
		{"last byte", 14, 3, 4},
		{"end of file", 15, 3, 5},
		{"negative offset", -1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			line, col := snapshot.LineAt(tc.offset)
			if line != tc.wantLine || col != tc.wantCol {
				t.Errorf("LineAt(%d) = (%d, %d), want (%d, %d)", tc.offset, line, col, tc.wantLine, tc.wantCol)
			}
		})
	}
}

func TestFileSnapshot_Offset(t *testing.T) {
	t.Parallel()

	snapshot := xmldoc.NewFileSnapshot("test.xml", []byte("<a>\n  <b/>\n</a>"))

	tests := []struct {
		name       string
		line, col  int
		wantOffset int
		wantOK     bool
	}{
		{"start of file", 1, 1, 0, true},
		{"start of line 2", 2, 1, 4, true},
		{"tag on line 2", 2, 3, 6, true},
		{"end of last line", 3, 5, 15, true},
		{"line zero", 0, 1, 0, false},
		{"line past end", 4, 1, 0, false},
		{"column zero", 1, 0, 0, false},
		{"column past line end", 1, 9, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			offset, ok := snapshot.Offset(tc.line, tc.col)
			if ok != tc.wantOK {
				t.Fatalf("Offset(%d, %d) ok = %v, want %v", tc.line, tc.col, ok, tc.wantOK)
			}
			if ok && offset != tc.wantOffset {
				t.Errorf("Offset(%d, %d) = %d, want %d", tc.line, tc.col, offset, tc.wantOffset)
			}
		})
	}
}

func TestLineAtOffsetRoundTrip(t *testing.T) {
	t.Parallel()

	content := "<?xml version=\"1.0\"?>\r\n<root>\n\t<child/>\n</root>\n"
	snapshot := xmldoc.NewFileSnapshot("test.xml", []byte(content))

	for offset := range len(content) {
		line, col := snapshot.LineAt(offset)
		got, ok := snapshot.Offset(line, col)
		if !ok || got != offset {
			t.Errorf("offset %d -> (%d, %d) -> %d (ok=%v)", offset, line, col, got, ok)
		}
	}
}

func TestFileSnapshot_LineContent(t *testing.T) {
	t.Parallel()

	snapshot := xmldoc.NewFileSnapshot("test.xml", []byte("<a>\r\n  <b/>\n</a>"))

	tests := []struct {
		line int
		want string
	}{
		{1, "<a>"},
		{2, "  <b/>"},
		{3, "</a>"},
		{0, ""},
		{4, ""},
	}

	for _, tc := range tests {
		if got := string(snapshot.LineContent(tc.line)); got != tc.want {
			t.Errorf("LineContent(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}

	if snapshot.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", snapshot.LineCount())
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()

	a := xmldoc.Position{Line: 2, Column: 5}
	b := xmldoc.Position{Line: 3, Column: 1}

	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before ordering broken for %v and %v", a, b)
	}
	if (xmldoc.Position{}).IsValid() {
		t.Error("zero Position must be invalid")
	}
	if a.String() != "2:5" {
		t.Errorf("String() = %q, want %q", a.String(), "2:5")
	}
}

func TestResource(t *testing.T) {
	t.Parallel()

	snapshot := xmldoc.NewFileSnapshot("pom.xml", nil)
	want := xmldoc.Resource{Path: "pom.xml", Encoding: xmldoc.EncodingUTF8}

	if snapshot.Resource != want {
		t.Errorf("Resource = %+v, want %+v", snapshot.Resource, want)
	}
	if want.String() != "pom.xml" {
		t.Errorf("String() = %q", want.String())
	}

	latin := xmldoc.Resource{Path: "a.xml", Encoding: "ISO-8859-1"}
	if latin.String() != "a.xml (ISO-8859-1)" {
		t.Errorf("String() = %q", latin.String())
	}
	if latin == want {
		t.Error("resources with different paths compared equal")
	}
}
