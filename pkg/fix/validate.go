package fix

import (
	"cmp"
	"fmt"
	"slices"
)

// ValidationError describes an edit whose range does not fit the content.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes two overlapping edits.
type ConflictError struct {
	First  TextEdit
	Second TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.StartOffset, e.First.EndOffset,
		e.Second.StartOffset, e.Second.EndOffset)
}

// ValidateEdits checks every edit range against the content length and
// returns the first problem found.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		switch {
		case edit.StartOffset < 0:
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		case edit.EndOffset < edit.StartOffset:
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		case edit.EndOffset > contentLen:
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortEdits orders edits by start offset, then end offset. The sort is stable
// so insertions at the same offset keep their reporting order.
func SortEdits(edits []TextEdit) {
	slices.SortStableFunc(edits, func(a, b TextEdit) int {
		if c := cmp.Compare(a.StartOffset, b.StartOffset); c != 0 {
			return c
		}
		return cmp.Compare(a.EndOffset, b.EndOffset)
	})
}

// overlaps reports whether next, sorted after prev, collides with it.
// Two insertions at the same offset collide too: their order would be arbitrary.
func overlaps(prev, next TextEdit) bool {
	if next.StartOffset < prev.EndOffset {
		return true
	}
	return prev.IsInsertion() && next.IsInsertion() && prev.StartOffset == next.StartOffset
}

// DetectConflicts returns the first pair of overlapping edits in a sorted
// slice, or nil.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		if overlaps(edits[i-1], edits[i]) {
			return &ConflictError{First: edits[i-1], Second: edits[i]}
		}
	}
	return nil
}

// PrepareEdits validates, sorts and conflict-checks edits, returning a sorted copy.
func PrepareEdits(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, err
	}

	sorted := slices.Clone(edits)
	SortEdits(sorted)

	if err := DetectConflicts(sorted); err != nil {
		return nil, err
	}

	return sorted, nil
}

// MergeAndFilterConflicts resolves overlaps in a sorted slice. Overlapping
// deletions merge into one deletion covering their union; any other
// overlapping edit is skipped in favour of the earlier one.
// It returns the accepted edits, the skipped edits and the number of merges.
func MergeAndFilterConflicts(edits []TextEdit) ([]TextEdit, []TextEdit, int) {
	if len(edits) == 0 {
		return nil, nil, 0
	}

	accepted := make([]TextEdit, 0, len(edits))
	var skipped []TextEdit
	merged := 0

	current := edits[0]
	for _, edit := range edits[1:] {
		switch {
		case !overlaps(current, edit):
			accepted = append(accepted, current)
			current = edit
		case current.NewText == "" && edit.NewText == "" && !current.IsInsertion() && !edit.IsInsertion():
			current.StartOffset = min(current.StartOffset, edit.StartOffset)
			current.EndOffset = max(current.EndOffset, edit.EndOffset)
			merged++
		default:
			skipped = append(skipped, edit)
		}
	}

	return append(accepted, current), skipped, merged
}

// PrepareEditsFiltered is PrepareEdits without failing on conflicts: they are
// merged or skipped by MergeAndFilterConflicts. Only invalid ranges are errors.
func PrepareEditsFiltered(edits []TextEdit, contentLen int) ([]TextEdit, []TextEdit, int, error) {
	if len(edits) == 0 {
		return nil, nil, 0, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, nil, 0, err
	}

	sorted := slices.Clone(edits)
	SortEdits(sorted)

	accepted, skipped, merged := MergeAndFilterConflicts(sorted)
	return accepted, skipped, merged, nil
}
