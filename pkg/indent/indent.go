package indent

import "fmt"

// Indent is an indentation occurrence: the number of indentation characters
// preceding a tag and the line they were measured on.
type Indent struct {
	// Line is 1-based.
	Line int

	// Size counts spaces and tabs alike.
	Size int
}

// Start is the indentation assumed before any whitespace has been seen.
var Start = Indent{Line: 1, Size: 0}

func (i Indent) String() string {
	return fmt.Sprintf("indent %d at line %d", i.Size, i.Line)
}

// elementEntry is a stack frame for an open element. Frames are replaced,
// never mutated.
type elementEntry struct {
	name     string
	found    Indent
	expected Indent
}
