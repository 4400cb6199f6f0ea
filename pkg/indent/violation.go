package indent

import (
	"fmt"

	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// Violation is an indentation error. Location is the 1-based line and column
// at which Fix applies. Violations are comparable.
type Violation struct {
	Resource xmldoc.Resource
	Location xmldoc.Position
	Fix      fix.Edit
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%s: %s", v.Resource.Path, v.Location, v.Fix)
}

// Handler receives violations in document order.
type Handler interface {
	Handle(v Violation)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(v Violation)

// Handle calls f(v).
func (f HandlerFunc) Handle(v Violation) {
	f(v)
}

// Collector is a Handler that keeps every violation it receives.
type Collector struct {
	Violations []Violation
}

// Handle appends v.
func (c *Collector) Handle(v Violation) {
	c.Violations = append(c.Violations, v)
}
