package syntax

import (
	"errors"
	"fmt"
	"sort"
)

// Edit errors.
var (
	ErrEditOutOfRange = errors.New("edit span out of range")
	ErrEditConflict   = errors.New("edits overlap")
	ErrEditGuard      = errors.New("existing text does not match expected content")
)

// Edit replaces the bytes covered by Span with NewText. When OldText is not
// empty it must match the current content of Span or the edit is rejected.
type Edit struct {
	Span    Span
	NewText string
	OldText string
}

// Replace builds an edit replacing span with text.
func Replace(span Span, text string) Edit {
	return Edit{Span: span, NewText: text}
}

// Delete builds an edit removing span.
func Delete(span Span) Edit {
	return Edit{Span: span}
}

// Insert builds an edit inserting text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Span: Span{Start: offset, End: offset}, NewText: text}
}

// applyEdits splices edits into src. Edits are applied from the end of the
// buffer towards its start so earlier offsets stay valid.
func applyEdits(src []byte, edits []Edit) ([]byte, error) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start == sorted[j].Span.Start {
			return sorted[i].Span.End > sorted[j].Span.End
		}

		return sorted[i].Span.Start > sorted[j].Span.Start
	})

	for i := 1; i < len(sorted); i++ {
		if spansConflict(sorted[i-1].Span, sorted[i].Span) {
			return nil, fmt.Errorf("%w: %s and %s", ErrEditConflict, sorted[i].Span, sorted[i-1].Span)
		}
	}

	out := append([]byte(nil), src...)

	for _, edit := range sorted {
		start, end := edit.Span.Start, edit.Span.End
		if start < 0 || end < start || end > len(out) {
			return nil, fmt.Errorf("%w: %s", ErrEditOutOfRange, edit.Span)
		}

		if edit.OldText != "" && string(out[start:end]) != edit.OldText {
			return nil, fmt.Errorf("%w at %s", ErrEditGuard, edit.Span)
		}

		suffix := append([]byte(nil), out[end:]...)
		out = append(append(out[:start], edit.NewText...), suffix...)
	}

	return out, nil
}

// spansConflict reports whether two spans overlap. Two insertions never
// conflict; an insertion conflicts with a span strictly containing it.
func spansConflict(a, b Span) bool {
	if a.Empty() && b.Empty() {
		return false
	}

	if a.Empty() {
		return b.Start < a.Start && a.Start < b.End
	}

	if b.Empty() {
		return a.Start < b.Start && b.Start < a.End
	}

	return a.Start < b.End && b.Start < a.End
}

// ListItemRemoval returns the span to delete when removing items[idx] from a
// comma separated list enclosed by inner (the bytes between the brackets).
// The separator on one side is removed together with the item; removing the
// only item empties the brackets.
func ListItemRemoval(inner Span, items []Span, idx int) Span {
	switch {
	case len(items) == 1:
		return inner
	case idx+1 < len(items):
		return Span{Start: items[idx].Start, End: items[idx+1].Start}
	default:
		return Span{Start: items[idx-1].End, End: items[idx].End}
	}
}

// LineRemoval widens span to whole lines when it is the only content on
// them, so deleting a statement does not leave a blank line behind.
func LineRemoval(src []byte, span Span) Span {
	start := span.Start
	for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
		start--
	}

	if start > 0 && src[start-1] != '\n' {
		return span
	}

	end := span.End
	for end < len(src) && (src[end] == ' ' || src[end] == '\t' || src[end] == '\r') {
		end++
	}

	if end < len(src) && src[end] != '\n' {
		return span
	}

	if end < len(src) {
		end++
	}

	return Span{Start: start, End: end}
}

// Indentation returns the leading whitespace of the line containing offset.
func Indentation(src []byte, offset int) string {
	lineStart := offset
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}

	end := lineStart
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}

	return string(src[lineStart:end])
}
