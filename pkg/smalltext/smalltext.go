package smalltext

import (
	"math"
	"unicode/utf8"
)

// String is a growable UTF-8 text value with small-string optimization.
//
// Content at or below the mode's inline threshold lives in the value's
// inline buffer; longer content is promoted to a heap allocation. Shrinking
// back to or below the threshold demotes the content to the inline buffer
// again, so IsInline is always equivalent to Len() <= Mode().MaxInline().
//
// The zero value is not usable; construct with [New], [FromString], or
// [FromBytes].
type String struct {
	mode   Mode
	inline [inlineBufferSize]byte
	length int // inline content length; meaningful only while heap == nil
	heap   []byte

	// prefix mirrors the first prefixFragmentSize content bytes in
	// Prefixed mode, zero-padded when the content is shorter.
	prefix [prefixFragmentSize]byte
}

// New returns an empty value using the given layout mode.
func New(mode Mode) *String {
	if mode == nil {
		panic("smalltext: nil mode")
	}

	return &String{mode: mode}
}

// FromString returns a value holding a copy of text.
func FromString(mode Mode, text string) *String {
	value := New(mode)
	value.setContent([]byte(text))

	return value
}

// FromBytes returns a value holding a copy of the borrowed byte view.
// The input slice is not retained.
func FromBytes(mode Mode, text []byte) *String {
	value := New(mode)

	owned := make([]byte, len(text))
	copy(owned, text)
	value.setContent(owned)

	return value
}

// Mode reports the layout mode the value was constructed with.
func (s *String) Mode() Mode { return s.mode }

// Len reports the content length in bytes.
func (s *String) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}

	return s.length
}

// IsInline reports whether the content is stored in the inline buffer
// rather than a heap allocation.
func (s *String) IsInline() bool { return s.heap == nil }

// String returns the content as a native Go string.
func (s *String) String() string { return string(s.content()) }

// content returns the live content bytes. Callers must not mutate or
// retain the returned slice across mutations.
func (s *String) content() []byte {
	if s.heap != nil {
		return s.heap
	}

	return s.inline[:s.length]
}

// setContent installs owned as the new content, choosing inline or heap
// storage by the mode threshold. setContent takes ownership of owned.
func (s *String) setContent(owned []byte) {
	if len(owned) <= s.mode.MaxInline() {
		s.length = copy(s.inline[:], owned)
		s.heap = nil
	} else {
		s.heap = owned
	}

	if s.mode == Prefixed {
		s.prefix = [prefixFragmentSize]byte{}
		copy(s.prefix[:], owned)
	}
}

// isCharBoundary reports whether offset falls between encoded characters.
// Offsets 0 and Len() are always boundaries; offsets beyond Len() never are.
func (s *String) isCharBoundary(offset int) bool {
	content := s.content()

	if offset == 0 || offset == len(content) {
		return true
	}

	if offset < 0 || offset > len(content) {
		return false
	}

	return utf8.RuneStart(content[offset])
}

// Push appends one character.
func (s *String) Push(ch rune) {
	s.setContent(utf8.AppendRune(append([]byte(nil), s.content()...), ch))
}

// PushString appends text.
func (s *String) PushString(text string) {
	content := s.content()

	grown := make([]byte, 0, len(content)+len(text))
	grown = append(grown, content...)
	grown = append(grown, text...)

	s.setContent(grown)
}

// Truncate shortens the content to offset bytes.
//
// Faults if offset is beyond the current length or not on a character
// boundary.
func (s *String) Truncate(offset int) {
	length := s.Len()

	if offset > length || offset < 0 {
		faultOutOfRange("Truncate", offset, length)
	}

	if !s.isCharBoundary(offset) {
		faultNotBoundary("Truncate", offset, length)
	}

	s.setContent(append([]byte(nil), s.content()[:offset]...))
}

// Pop removes and returns the last character. The second return is false
// when the content is empty.
func (s *String) Pop() (rune, bool) {
	content := s.content()
	if len(content) == 0 {
		return 0, false
	}

	ch, size := utf8.DecodeLastRune(content)
	s.setContent(append([]byte(nil), content[:len(content)-size]...))

	return ch, true
}

// Remove deletes and returns the character starting at offset.
//
// Faults if offset is not strictly inside the content or not on a
// character boundary.
func (s *String) Remove(offset int) rune {
	length := s.Len()

	if offset >= length || offset < 0 {
		faultOutOfRange("Remove", offset, length)
	}

	if !s.isCharBoundary(offset) {
		faultNotBoundary("Remove", offset, length)
	}

	content := s.content()
	ch, size := utf8.DecodeRune(content[offset:])

	shrunk := make([]byte, 0, len(content)-size)
	shrunk = append(shrunk, content[:offset]...)
	shrunk = append(shrunk, content[offset+size:]...)
	s.setContent(shrunk)

	return ch
}

// Insert inserts one character at offset.
//
// The offset is validated before any storage transition happens, so an
// invalid insert never promotes an inline value to heap storage.
func (s *String) Insert(offset int, ch rune) {
	s.InsertString(offset, string(ch))
}

// InsertString inserts text at offset.
//
// Faults if offset is beyond the current length or not on a character
// boundary. The offset is validated before any storage transition.
func (s *String) InsertString(offset int, text string) {
	length := s.Len()

	if offset > length || offset < 0 {
		faultOutOfRange("InsertString", offset, length)
	}

	if !s.isCharBoundary(offset) {
		faultNotBoundary("InsertString", offset, length)
	}

	content := s.content()

	grown := make([]byte, 0, len(content)+len(text))
	grown = append(grown, content[:offset]...)
	grown = append(grown, text...)
	grown = append(grown, content[offset:]...)

	s.setContent(grown)
}

// SplitOff truncates the value at offset and returns a new value (with the
// same mode) holding the remainder.
//
// Faults if offset is beyond the current length or not on a character
// boundary.
func (s *String) SplitOff(offset int) *String {
	length := s.Len()

	if offset > length || offset < 0 {
		faultOutOfRange("SplitOff", offset, length)
	}

	if !s.isCharBoundary(offset) {
		faultNotBoundary("SplitOff", offset, length)
	}

	content := s.content()

	tail := New(s.mode)
	tail.setContent(append([]byte(nil), content[offset:]...))

	s.setContent(append([]byte(nil), content[:offset]...))

	return tail
}

// Clear removes all content. The value always classifies as inline
// afterwards.
func (s *String) Clear() {
	s.setContent(nil)
}

// Retain keeps only the characters for which keep returns true, preserving
// their order.
func (s *String) Retain(keep func(ch rune) bool) {
	content := s.content()

	kept := make([]byte, 0, len(content))
	for _, ch := range string(content) {
		if keep(ch) {
			kept = utf8.AppendRune(kept, ch)
		}
	}

	s.setContent(kept)
}

// Slice returns the content between start (inclusive) and end (exclusive).
//
// Faults if start > end, either offset is beyond the current length, or
// either offset is not on a character boundary.
func (s *String) Slice(start, end int) string {
	length := s.Len()

	if start > end {
		faultInvertedRange("Slice", start, end, length)
	}

	if start > length || start < 0 {
		faultOutOfRange("Slice", start, length)
	}

	if end > length {
		faultOutOfRange("Slice", end, length)
	}

	if !s.isCharBoundary(start) {
		faultNotBoundary("Slice", start, length)
	}

	if !s.isCharBoundary(end) {
		faultNotBoundary("Slice", end, length)
	}

	return string(s.content()[start:end])
}

// SliceFrom returns the content from start (inclusive) to the end.
func (s *String) SliceFrom(start int) string {
	length := s.Len()

	if start > length || start < 0 {
		faultOutOfRange("SliceFrom", start, length)
	}

	if !s.isCharBoundary(start) {
		faultNotBoundary("SliceFrom", start, length)
	}

	return string(s.content()[start:])
}

// SliceTo returns the content from the beginning to end (exclusive).
func (s *String) SliceTo(end int) string {
	length := s.Len()

	if end > length || end < 0 {
		faultOutOfRange("SliceTo", end, length)
	}

	if !s.isCharBoundary(end) {
		faultNotBoundary("SliceTo", end, length)
	}

	return string(s.content()[:end])
}

// SliceFull returns the entire content. It never faults.
func (s *String) SliceFull() string {
	return string(s.content())
}

// SliceInclusive returns the content between start and end, both inclusive.
//
// end+1 must be a character boundary. An end of the maximum representable
// offset always faults; the boundary math never wraps around.
func (s *String) SliceInclusive(start, end int) string {
	length := s.Len()

	if start > end {
		faultInvertedRange("SliceInclusive", start, end, length)
	}

	if start > length || start < 0 {
		faultOutOfRange("SliceInclusive", start, length)
	}

	if end > length || end < 0 {
		faultOutOfRange("SliceInclusive", end, length)
	}

	if !s.isCharBoundary(start) {
		faultNotBoundary("SliceInclusive", start, length)
	}

	if end == math.MaxInt || !s.isCharBoundary(end+1) {
		faultNotBoundary("SliceInclusive", end, length)
	}

	return string(s.content()[start : end+1])
}

// SliceToInclusive returns the content from the beginning through end,
// inclusive.
//
// end+1 must be a character boundary. An end of the maximum representable
// offset always faults; the boundary math never wraps around.
func (s *String) SliceToInclusive(end int) string {
	length := s.Len()

	if end > length || end < 0 {
		faultOutOfRange("SliceToInclusive", end, length)
	}

	if end == math.MaxInt || !s.isCharBoundary(end+1) {
		faultNotBoundary("SliceToInclusive", end, length)
	}

	return string(s.content()[:end+1])
}
