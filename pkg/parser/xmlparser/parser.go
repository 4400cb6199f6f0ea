// Package xmlparser turns XML content into the flat event stream consumed by
// the indentation validator. It is lenient: well-formedness beyond what is
// needed to find tags is not checked, and tag names are not matched.
package xmlparser

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// ErrSyntax is returned when the tokenizer cannot find the next tag.
var ErrSyntax = errors.New("xml syntax error")

// Parser implements lint.Parser for XML. It is safe for concurrent use.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse builds a FileSnapshot with its event stream from UTF-8 content.
// Returns nil and an error if tokenizing fails or ctx is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*xmldoc.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := xmldoc.NewFileSnapshot(path, bytes.Clone(content))

	events, err := tokenize(snapshot)
	if err != nil {
		return nil, err
	}
	snapshot.Events = events

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	return snapshot, nil
}

// Events tokenizes content without keeping the snapshot.
func Events(content []byte) ([]xmldoc.Event, error) {
	return tokenize(xmldoc.NewFileSnapshot("", content))
}

func newDecoder(content []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.Strict = false
	// Content is decoded to UTF-8 before parsing whatever the declaration says.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return dec
}

func tokenize(snapshot *xmldoc.FileSnapshot) ([]xmldoc.Event, error) {
	dec := newDecoder(snapshot.Content)
	events := make([]xmldoc.Event, 0, 64)

	for {
		start := int(dec.InputOffset())

		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, syntaxError(snapshot, start, err)
		}

		end := int(dec.InputOffset())

		switch t := tok.(type) {
		case xml.StartElement:
			events = append(events, tagEvent(snapshot, xmldoc.EventOpenTag, t.Name, start, len("<")))

		case xml.EndElement:
			// The decoder reports <name/> as a start element followed by
			// an end element spanning no input.
			if end == start && len(events) > 0 && events[len(events)-1].Kind == xmldoc.EventOpenTag {
				events[len(events)-1].Kind = xmldoc.EventEmptyTag
				continue
			}
			events = append(events, tagEvent(snapshot, xmldoc.EventCloseTag, t.Name, start, len("</")))

		case xml.CharData:
			endLine, _ := snapshot.LineAt(end)
			events = append(events, xmldoc.Event{
				Kind:    xmldoc.EventCharData,
				Pos:     snapshot.PositionAt(start),
				Offset:  start,
				Text:    string(t),
				EndLine: endLine,
			})

		case xml.Comment, xml.ProcInst, xml.Directive:
			events = append(events, xmldoc.Event{
				Kind:   xmldoc.EventBoundary,
				Pos:    snapshot.PositionAt(start),
				Offset: start,
			})
		}
	}
}

func tagEvent(snapshot *xmldoc.FileSnapshot, kind xmldoc.EventKind, name xml.Name, start, nameOffset int) xmldoc.Event {
	return xmldoc.Event{
		Kind:   kind,
		Name:   qualifiedName(name),
		Pos:    snapshot.PositionAt(start + nameOffset),
		Offset: start,
	}
}

// qualifiedName rebuilds prefix:local. RawToken leaves the prefix in Space.
func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func syntaxError(snapshot *xmldoc.FileSnapshot, offset int, err error) error {
	var xmlErr *xml.SyntaxError
	if errors.As(err, &xmlErr) {
		return fmt.Errorf("%w: %s: line %d: %s", ErrSyntax, snapshot.Path, xmlErr.Line, xmlErr.Msg)
	}
	return fmt.Errorf("%w: %s: near %s: %w", ErrSyntax, snapshot.Path, snapshot.PositionAt(offset), err)
}
