package fix

import "bytes"

// ApplyEdits applies a sorted, validated slice of edits to content and returns
// the result. Prepare edits with PrepareEdits or PrepareEditsFiltered first.
// Content is returned unchanged when there is nothing to apply.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	size := len(content)
	for _, e := range edits {
		size += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(size)

	prev := 0
	for _, e := range edits {
		out.Write(content[prev:e.StartOffset])
		out.WriteString(e.NewText)
		prev = e.EndOffset
	}
	out.Write(content[prev:])

	return out.Bytes()
}
