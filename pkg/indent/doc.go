// Package indent implements the indentation state machine of goxmllint.
//
// A Validator consumes the markup events of one document in order. For every
// opening tag it compares the whitespace found before the tag with the
// indentation expected at that nesting depth; for every closing tag it
// compares against the indentation of the matching opening tag. Each mismatch
// is reported to a Handler as a Violation carrying the whitespace Edit that
// corrects it.
//
// Tags sharing a line with their parent's opening tag, and closing tags on
// the same line as their opening tag, are never reported. After a violation
// the corrected indentation becomes the baseline for the element's
// descendants, so a single misplaced subtree yields a single violation.
package indent
