package indent

import (
	"fmt"

	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// Tag name columns are shifted left by these amounts to land on the '<'.
const (
	openTagNameOffset  = len("<")
	closeTagNameOffset = len("</")
)

// Validator is the indentation state machine for one document.
// It is not safe for concurrent use.
type Validator struct {
	resource xmldoc.Resource
	opts     Options
	handler  Handler

	stack []elementEntry
	ws    whitespace
	last  Indent
}

// NewValidator creates a Validator reporting violations in resource to handler.
func NewValidator(resource xmldoc.Resource, opts Options, handler Handler) *Validator {
	return &Validator{
		resource: resource,
		opts:     opts,
		handler:  handler,
		last:     Start,
	}
}

// Depth returns the number of currently open elements.
func (v *Validator) Depth() int {
	return len(v.stack)
}

// OpenElements returns the names of the elements still open, outermost
// first.
func (v *Validator) OpenElements() []string {
	names := make([]string, len(v.stack))
	for i, entry := range v.stack {
		names[i] = entry.name
	}
	return names
}

// CharData records character data ending on line endLine. Text, CDATA and
// inter-tag whitespace all go through here.
func (v *Validator) CharData(text string, endLine int) {
	v.ws.add(text, endLine)
}

// Flush ends the current run of character data. Markup that is neither a tag
// nor character data (comments, processing instructions, directives) flushes.
func (v *Validator) Flush() {
	if found, ok := v.ws.flush(); ok {
		v.last = found
	}
}

// OpenTag handles the opening tag of element name. pos is the position of the
// first character of the name.
func (v *Validator) OpenTag(name string, pos xmldoc.Position) {
	v.Flush()
	v.push(v.check(name, pos))
}

// EmptyTag handles a self-closing tag. It is checked like an opening tag and
// closes on its own line, so no closing check applies.
func (v *Validator) EmptyTag(name string, pos xmldoc.Position) {
	v.Flush()
	v.check(name, pos)
}

// check compares the indentation before an opening tag against its parent
// and returns the frame to push for it.
func (v *Validator) check(name string, pos xmldoc.Position) elementEntry {
	entry := elementEntry{name: name, found: v.last, expected: v.last}

	if len(v.stack) == 0 {
		return entry
	}

	parent := v.stack[len(v.stack)-1]
	diff := entry.found.Size - parent.expected.Size
	expected := parent.expected.Size + v.opts.IndentSize

	// Zero indentation relative to the parent is only fine on the parent's line.
	if diff == 0 && entry.found.Line == parent.found.Line {
		return entry
	}
	if diff == v.opts.IndentSize {
		return entry
	}

	v.report(pos, openTagNameOffset, expected-entry.found.Size)

	entry.expected = Indent{Line: entry.found.Line, Size: expected}
	return entry
}

// CloseTag handles the closing tag of element name. pos is the position of
// the first character of the name. It fails with a *StructureError wrapping
// ErrUnbalanced when no element is open.
func (v *Validator) CloseTag(name string, pos xmldoc.Position) error {
	v.Flush()

	if len(v.stack) == 0 {
		return &StructureError{Resource: v.resource, Element: name, Pos: pos, Err: ErrUnbalanced}
	}

	entry := v.pop()
	found := v.last

	if found.Line != entry.found.Line && found.Size != entry.expected.Size {
		v.report(pos, closeTagNameOffset, entry.expected.Size-found.Size)
	}

	return nil
}

// report emits a violation for a tag whose name starts at pos. delta is the
// number of indentation characters missing (positive) or in excess (negative).
func (v *Validator) report(pos xmldoc.Position, nameOffset, delta int) {
	col := pos.Column - nameOffset

	var edit fix.Edit
	if delta > 0 {
		edit = fix.Insert(v.opts.IndentChar, delta)
	} else {
		edit = fix.Delete(-delta)
		col += delta
	}

	v.handler.Handle(Violation{
		Resource: v.resource,
		Location: xmldoc.Position{Line: pos.Line, Column: col},
		Fix:      edit,
	})
}

func (v *Validator) push(entry elementEntry) {
	v.stack = append(v.stack, entry)
}

func (v *Validator) pop() elementEntry {
	top := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	return top
}

// Consume dispatches one event.
func (v *Validator) Consume(ev xmldoc.Event) error {
	switch ev.Kind {
	case xmldoc.EventOpenTag:
		v.OpenTag(ev.Name, ev.Pos)
	case xmldoc.EventEmptyTag:
		v.EmptyTag(ev.Name, ev.Pos)
	case xmldoc.EventCloseTag:
		return v.CloseTag(ev.Name, ev.Pos)
	case xmldoc.EventCharData:
		v.CharData(ev.Text, ev.EndLine)
	case xmldoc.EventBoundary:
		v.Flush()
	default:
		return fmt.Errorf("unknown event kind %d at %s", ev.Kind, ev.Pos)
	}
	return nil
}

// Run consumes events until the first error.
func (v *Validator) Run(events []xmldoc.Event) error {
	for _, ev := range events {
		if err := v.Consume(ev); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a whole event stream and returns the violations found.
func Validate(resource xmldoc.Resource, opts Options, events []xmldoc.Event) ([]Violation, error) {
	var collector Collector
	err := NewValidator(resource, opts, &collector).Run(events)
	return collector.Violations, err
}
