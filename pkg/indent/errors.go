package indent

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// ErrUnbalanced is the sentinel for a closing tag without an open element.
var ErrUnbalanced = errors.New("unbalanced closing tag")

// StructureError reports an event stream the validator cannot follow.
// Validation of the document stops at the first one.
type StructureError struct {
	Resource xmldoc.Resource
	Element  string
	Pos      xmldoc.Position
	Err      error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: no open element when closing </%s> around line %d and column %d",
		e.Resource.Path, e.Element, e.Pos.Line, e.Pos.Column)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
