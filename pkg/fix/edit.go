// Package fix provides the edits goxmllint proposes and the logic that
// validates and applies them to file content.
package fix

import (
	"fmt"
	"strings"
)

// EditKind tells an indentation insertion from a deletion.
type EditKind uint8

const (
	// EditInsert inserts Count copies of Char.
	EditInsert EditKind = iota + 1

	// EditDelete deletes Count characters.
	EditDelete
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is a whitespace correction anchored at a line and column that is
// carried by the violation reporting it. The zero Edit is invalid.
type Edit struct {
	Kind EditKind

	// Char is the inserted character. Unused for deletions.
	Char rune

	// Count is the number of characters inserted or deleted. Always positive.
	Count int
}

// Insert returns an Edit inserting count copies of char. It panics if count
// is not positive.
func Insert(char rune, count int) Edit {
	if count <= 0 {
		panic(fmt.Sprintf("fix.Insert: non-positive count %d", count))
	}
	return Edit{Kind: EditInsert, Char: char, Count: count}
}

// Delete returns an Edit removing count characters. It panics if count is
// not positive.
func Delete(count int) Edit {
	if count <= 0 {
		panic(fmt.Sprintf("fix.Delete: non-positive count %d", count))
	}
	return Edit{Kind: EditDelete, Count: count}
}

// Text returns the inserted text, or "" for deletions.
func (e Edit) Text() string {
	if e.Kind != EditInsert {
		return ""
	}
	return strings.Repeat(string(e.Char), e.Count)
}

// String describes the edit for humans, e.g. "insert 2 spaces".
func (e Edit) String() string {
	switch e.Kind {
	case EditInsert:
		return fmt.Sprintf("insert %d %s", e.Count, charNoun(e.Char, e.Count))
	case EditDelete:
		return fmt.Sprintf("delete %d %s", e.Count, plural("character", e.Count))
	default:
		return "no-op"
	}
}

// At anchors the edit at a byte offset, producing the TextEdit to apply.
func (e Edit) At(offset int) TextEdit {
	if e.Kind == EditDelete {
		return TextEdit{StartOffset: offset, EndOffset: offset + e.Count}
	}
	return TextEdit{StartOffset: offset, EndOffset: offset, NewText: e.Text()}
}

func charNoun(char rune, count int) string {
	switch char {
	case ' ':
		return plural("space", count)
	case '\t':
		return plural("tab", count)
	default:
		return fmt.Sprintf("%q %s", char, plural("character", count))
	}
}

func plural(noun string, count int) string {
	if count == 1 {
		return noun
	}
	return noun + "s"
}

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsInsertion reports whether the edit removes nothing.
func (e TextEdit) IsInsertion() bool {
	return e.StartOffset == e.EndOffset
}
