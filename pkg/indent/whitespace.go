package indent

import "strings"

// whitespace accumulates the character data seen since the last flush.
type whitespace struct {
	buf  strings.Builder
	line int
}

// add appends text ending on line.
func (w *whitespace) add(text string, line int) {
	w.buf.WriteString(text)
	w.line = line
}

// flush measures the trailing indentation of the buffered text and resets
// the buffer. ok is false when no line break precedes the trailing spaces
// and tabs, in which case the previous indentation still applies.
func (w *whitespace) flush() (Indent, bool) {
	text := w.buf.String()
	w.buf.Reset()

	size := 0
	for idx := len(text) - 1; idx >= 0; idx-- {
		switch text[idx] {
		case ' ', '\t':
			size++
		case '\n', '\r':
			return Indent{Line: w.line, Size: size}, true
		default:
			return Indent{}, false
		}
	}

	return Indent{}, false
}
