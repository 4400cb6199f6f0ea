package xmldoc

import "sort"

// BuildLines constructs the line index of content.
// Only LF terminates a line; a preceding CR is kept out of the line body.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	lines := make([]LineInfo, 0, 64)
	start := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}

		bodyEnd := idx
		if idx > start && content[idx-1] == '\r' {
			bodyEnd--
		}

		lines = append(lines, LineInfo{StartOffset: start, NewlineStart: bodyEnd, EndOffset: idx + 1})
		start = idx + 1
	}

	// The last line, possibly empty, has no terminator.
	lines = append(lines, LineInfo{StartOffset: start, NewlineStart: len(content), EndOffset: len(content)})

	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Offsets at or past the end of content map
// onto the last line. Returns (0, 0) for negative offsets or empty files.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	last := len(f.Lines) - 1
	if offset >= len(f.Content) {
		return last + 1, offset - f.Lines[last].StartOffset + 1
	}

	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	idx = min(idx, last)

	return idx + 1, offset - f.Lines[idx].StartOffset + 1
}

// PositionAt is LineAt packaged as a Position.
func (f *FileSnapshot) PositionAt(offset int) Position {
	line, col := f.LineAt(offset)
	return Position{Line: line, Column: col}
}

// Offset converts 1-based line and column numbers to a byte offset.
// The column may point one past the line body (for insertions at end of line).
// Returns (0, false) if the position is out of range.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}

	info := f.Lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
