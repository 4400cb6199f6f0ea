package xmldoc

// EventKind classifies a markup event.
type EventKind uint8

const (
	// EventOpenTag is the start of an element's opening tag.
	EventOpenTag EventKind = iota + 1

	// EventCloseTag is the start of an element's closing tag.
	EventCloseTag

	// EventEmptyTag is a self-closing element such as <br/>.
	EventEmptyTag

	// EventCharData is character data between tags, including CDATA sections.
	EventCharData

	// EventBoundary is markup that ends a run of character data without
	// contributing to it: comments, processing instructions and directives.
	EventBoundary
)

var eventKindNames = map[EventKind]string{
	EventOpenTag:  "open",
	EventCloseTag: "close",
	EventEmptyTag: "empty",
	EventCharData: "chardata",
	EventBoundary: "boundary",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one entry of a document's event stream.
type Event struct {
	Kind EventKind

	// Name is the qualified element name for tag events.
	Name string

	// Pos is the position of the first character of the element name for tag
	// events, and of the first character of the run for other events.
	Pos Position

	// Offset is the byte offset of the markup start ('<' for tags).
	Offset int

	// Text holds the character data of EventCharData events.
	Text string

	// EndLine is the line on which the character data run ends, that is the
	// line of the markup following it.
	EndLine int
}
