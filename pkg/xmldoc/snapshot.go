// Package xmldoc provides the document model shared by the goxmllint parser,
// the indentation validator and the lint rules:
//   - FileSnapshot: the decoded file content with its line index
//   - Event: the flat stream of markup events produced by a parser
//   - Resource: the identity of a checked file
package xmldoc

// FileSnapshot is an immutable view of an XML file at a specific time.
// It holds the decoded content, line metadata and the event stream.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file content, decoded to UTF-8.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Events is the markup event stream in document order.
	Events []Event

	// Resource identifies the file in violations.
	Resource Resource
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a FileSnapshot for UTF-8 content.
// It builds the line index but produces no events; that is the parser's job.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:     path,
		Content:  content,
		Lines:    BuildLines(content),
		Resource: Resource{Path: path, Encoding: EncodingUTF8},
	}
}
