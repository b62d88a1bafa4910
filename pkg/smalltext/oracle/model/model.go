// Package model provides a deliberately simple reference implementation of
// growable UTF-8 text.
//
// The model is the ground truth for differential testing: it favors clarity
// over performance, stores content as one plain byte slice, and has no
// small-string optimization of any kind. Every offset-taking operation
// validates its input and faults (panics with a [*Fault]) on invalid
// offsets, defining the behavior the subject type must reproduce.
package model

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"
)

// Fault is the panic payload for invalid offsets on the reference text.
type Fault struct {
	Op     string
	Offset int
	Len    int
	Reason string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("model: %s(%d) on content of length %d: %s", f.Op, f.Offset, f.Len, f.Reason)
}

// Text is the trusted growable text value.
type Text struct {
	content []byte
}

// New returns an empty text.
func New() *Text {
	return &Text{}
}

// FromString returns a text holding a copy of s.
func FromString(s string) *Text {
	return &Text{content: []byte(s)}
}

// Clone returns a deep copy.
func (t *Text) Clone() *Text {
	return &Text{content: append([]byte(nil), t.content...)}
}

// String returns the content as a native Go string.
func (t *Text) String() string { return string(t.content) }

// Len reports the content length in bytes.
func (t *Text) Len() int { return len(t.content) }

// IsCharBoundary reports whether offset falls between encoded characters.
// Offsets 0 and Len() are always boundaries; offsets outside [0, Len()]
// never are.
func (t *Text) IsCharBoundary(offset int) bool {
	if offset == 0 || offset == len(t.content) {
		return true
	}

	if offset < 0 || offset > len(t.content) {
		return false
	}

	return utf8.RuneStart(t.content[offset])
}

func (t *Text) fault(op string, offset int, reason string) {
	panic(&Fault{Op: op, Offset: offset, Len: len(t.content), Reason: reason})
}

func (t *Text) requireBoundary(op string, offset int) {
	if offset > len(t.content) || offset < 0 {
		t.fault(op, offset, "offset out of range")
	}

	if !t.IsCharBoundary(offset) {
		t.fault(op, offset, "offset is not a character boundary")
	}
}

// Push appends one character.
func (t *Text) Push(ch rune) {
	t.content = utf8.AppendRune(t.content, ch)
}

// PushString appends text.
func (t *Text) PushString(s string) {
	t.content = append(t.content, s...)
}

// Truncate shortens the content to offset bytes. Faults if offset is
// beyond the current length or not on a character boundary.
func (t *Text) Truncate(offset int) {
	t.requireBoundary("Truncate", offset)
	t.content = t.content[:offset]
}

// Pop removes and returns the last character. The second return is false
// when the content is empty.
func (t *Text) Pop() (rune, bool) {
	if len(t.content) == 0 {
		return 0, false
	}

	ch, size := utf8.DecodeLastRune(t.content)
	t.content = t.content[:len(t.content)-size]

	return ch, true
}

// Remove deletes and returns the character starting at offset. Faults if
// offset is not strictly inside the content or not on a character boundary.
func (t *Text) Remove(offset int) rune {
	if offset >= len(t.content) || offset < 0 {
		t.fault("Remove", offset, "offset out of range")
	}

	if !t.IsCharBoundary(offset) {
		t.fault("Remove", offset, "offset is not a character boundary")
	}

	ch, size := utf8.DecodeRune(t.content[offset:])
	t.content = append(t.content[:offset], t.content[offset+size:]...)

	return ch
}

// Insert inserts one character at offset.
func (t *Text) Insert(offset int, ch rune) {
	t.InsertString(offset, string(ch))
}

// InsertString inserts s at offset. Faults if offset is beyond the current
// length or not on a character boundary.
func (t *Text) InsertString(offset int, s string) {
	t.requireBoundary("InsertString", offset)

	grown := make([]byte, 0, len(t.content)+len(s))
	grown = append(grown, t.content[:offset]...)
	grown = append(grown, s...)
	grown = append(grown, t.content[offset:]...)
	t.content = grown
}

// SplitOff truncates the text at offset and returns a new text holding the
// remainder. Faults if offset is beyond the current length or not on a
// character boundary.
func (t *Text) SplitOff(offset int) *Text {
	t.requireBoundary("SplitOff", offset)

	tail := &Text{content: append([]byte(nil), t.content[offset:]...)}
	t.content = t.content[:offset]

	return tail
}

// Clear removes all content.
func (t *Text) Clear() {
	t.content = nil
}

// Retain keeps only the characters for which keep returns true, preserving
// their order.
func (t *Text) Retain(keep func(ch rune) bool) {
	kept := make([]byte, 0, len(t.content))
	for _, ch := range string(t.content) {
		if keep(ch) {
			kept = utf8.AppendRune(kept, ch)
		}
	}

	t.content = kept
}

// Slice returns the content between start (inclusive) and end (exclusive).
func (t *Text) Slice(start, end int) string {
	if start > end {
		t.fault("Slice", start, fmt.Sprintf("range start %d is greater than end %d", start, end))
	}

	t.requireBoundary("Slice", start)
	t.requireBoundary("Slice", end)

	return string(t.content[start:end])
}

// SliceFrom returns the content from start (inclusive) to the end.
func (t *Text) SliceFrom(start int) string {
	t.requireBoundary("SliceFrom", start)

	return string(t.content[start:])
}

// SliceTo returns the content from the beginning to end (exclusive).
func (t *Text) SliceTo(end int) string {
	t.requireBoundary("SliceTo", end)

	return string(t.content[:end])
}

// SliceFull returns the entire content. It never faults.
func (t *Text) SliceFull() string {
	return string(t.content)
}

// SliceInclusive returns the content between start and end, both inclusive.
// An end of the maximum representable offset always faults; the end+1
// boundary math never wraps around.
func (t *Text) SliceInclusive(start, end int) string {
	if start > end {
		t.fault("SliceInclusive", start, fmt.Sprintf("range start %d is greater than end %d", start, end))
	}

	t.requireBoundary("SliceInclusive", start)

	if end > len(t.content) || end < 0 {
		t.fault("SliceInclusive", end, "offset out of range")
	}

	if end == math.MaxInt || !t.IsCharBoundary(end+1) {
		t.fault("SliceInclusive", end, "offset+1 is not a character boundary")
	}

	return string(t.content[start : end+1])
}

// SliceToInclusive returns the content from the beginning through end,
// inclusive. An end of the maximum representable offset always faults; the
// end+1 boundary math never wraps around.
func (t *Text) SliceToInclusive(end int) string {
	if end > len(t.content) || end < 0 {
		t.fault("SliceToInclusive", end, "offset out of range")
	}

	if end == math.MaxInt || !t.IsCharBoundary(end+1) {
		t.fault("SliceToInclusive", end, "offset+1 is not a character boundary")
	}

	return string(t.content[:end+1])
}

// Compare returns -1, 0, or 1 ordering t against other by content bytes.
func (t *Text) Compare(other *Text) int {
	return bytes.Compare(t.content, other.content)
}

// CompareString orders t against a native Go string.
func (t *Text) CompareString(s string) int {
	return bytes.Compare(t.content, []byte(s))
}
