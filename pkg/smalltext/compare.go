package smalltext

import "bytes"

// Compare returns -1, 0, or 1 ordering s against other by content bytes.
//
// Ordering is content-defined: two values compare equal whenever their
// content is byte-identical, regardless of layout mode or of whether
// either side is inline or heap-backed.
func (s *String) Compare(other *String) int {
	if s.prefixDecides() && other.prefixDecides() {
		if verdict := bytes.Compare(s.prefix[:], other.prefix[:]); verdict != 0 {
			return verdict
		}
	}

	return bytes.Compare(s.content(), other.content())
}

// CompareString orders s against a native Go string.
func (s *String) CompareString(text string) int {
	if s.prefixDecides() && len(text) >= prefixFragmentSize {
		if verdict := bytes.Compare(s.prefix[:], []byte(text[:prefixFragmentSize])); verdict != 0 {
			return verdict
		}
	}

	return bytes.Compare(s.content(), []byte(text))
}

// Equal reports whether s and other hold byte-identical content.
func (s *String) Equal(other *String) bool {
	return s.Compare(other) == 0
}

// EqualString reports whether s holds content byte-identical to text.
func (s *String) EqualString(text string) bool {
	return s.CompareString(text) == 0
}

// prefixDecides reports whether the comparison prefix fragment alone can
// settle an inequality: the value is in Prefixed mode and the fragment is
// fully populated. Shorter content would make the zero padding ambiguous
// against real NUL bytes.
func (s *String) prefixDecides() bool {
	return s.mode == Prefixed && s.Len() >= prefixFragmentSize
}
