package oracle

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle/model"
)

// Bounds is one of the six range shapes a slice operation can take.
//
// Each shape knows how to predict, from reference content alone, whether
// slicing with it must fault, and how to perform the slice against either
// side. The shape set is closed: every shape implements the full method
// set, so adding a shape without wiring it everywhere fails to compile.
type Bounds interface {
	// ShouldFault predicts from the content alone whether slicing must
	// fault. It is the authoritative bound predicate: it never consults
	// the subject.
	ShouldFault(content string) bool

	sliceReference(text *model.Text) string
	sliceSubject(subject *smalltext.String) string

	String() string
}

// RangeBounds is start (inclusive) to end (exclusive).
type RangeBounds struct {
	Start int
	End   int
}

// FromBounds is start (inclusive) to the end of the content.
type FromBounds struct {
	Start int
}

// ToBounds is the beginning of the content to end (exclusive).
type ToBounds struct {
	End int
}

// FullBounds is the entire content.
type FullBounds struct{}

// InclusiveBounds is start to end, both inclusive.
type InclusiveBounds struct {
	Start int
	End   int
}

// ToInclusiveBounds is the beginning of the content through end, inclusive.
type ToInclusiveBounds struct {
	End int
}

// isCharBoundary reports whether offset falls between encoded characters
// of content. Offsets 0 and len(content) are boundaries; offsets outside
// [0, len(content)] never are.
func isCharBoundary(content string, offset int) bool {
	if offset == 0 || offset == len(content) {
		return true
	}

	if offset < 0 || offset > len(content) {
		return false
	}

	return utf8.RuneStart(content[offset])
}

// inclusiveEndFaults reports whether an inclusive end offset is invalid:
// end+1 must be a character boundary, a negative end always faults even
// though end+1 may land on a boundary, and the maximum representable
// offset always faults so the +1 can never wrap around.
func inclusiveEndFaults(content string, end int) bool {
	if end < 0 || end == math.MaxInt {
		return true
	}

	return !isCharBoundary(content, end+1)
}

func (b RangeBounds) ShouldFault(content string) bool {
	length := len(content)

	return b.Start > b.End ||
		b.Start > length ||
		b.End > length ||
		!isCharBoundary(content, b.Start) ||
		!isCharBoundary(content, b.End)
}

func (b FromBounds) ShouldFault(content string) bool {
	return b.Start > len(content) || !isCharBoundary(content, b.Start)
}

func (b ToBounds) ShouldFault(content string) bool {
	return b.End > len(content) || !isCharBoundary(content, b.End)
}

func (FullBounds) ShouldFault(string) bool { return false }

func (b InclusiveBounds) ShouldFault(content string) bool {
	length := len(content)

	return b.Start > b.End ||
		b.Start > length ||
		b.End > length ||
		!isCharBoundary(content, b.Start) ||
		inclusiveEndFaults(content, b.End)
}

func (b ToInclusiveBounds) ShouldFault(content string) bool {
	return b.End > len(content) || inclusiveEndFaults(content, b.End)
}

func (b RangeBounds) sliceReference(text *model.Text) string { return text.Slice(b.Start, b.End) }
func (b FromBounds) sliceReference(text *model.Text) string  { return text.SliceFrom(b.Start) }
func (b ToBounds) sliceReference(text *model.Text) string    { return text.SliceTo(b.End) }
func (FullBounds) sliceReference(text *model.Text) string    { return text.SliceFull() }
func (b InclusiveBounds) sliceReference(text *model.Text) string {
	return text.SliceInclusive(b.Start, b.End)
}
func (b ToInclusiveBounds) sliceReference(text *model.Text) string {
	return text.SliceToInclusive(b.End)
}

func (b RangeBounds) sliceSubject(subject *smalltext.String) string {
	return subject.Slice(b.Start, b.End)
}
func (b FromBounds) sliceSubject(subject *smalltext.String) string { return subject.SliceFrom(b.Start) }
func (b ToBounds) sliceSubject(subject *smalltext.String) string   { return subject.SliceTo(b.End) }
func (FullBounds) sliceSubject(subject *smalltext.String) string   { return subject.SliceFull() }
func (b InclusiveBounds) sliceSubject(subject *smalltext.String) string {
	return subject.SliceInclusive(b.Start, b.End)
}
func (b ToInclusiveBounds) sliceSubject(subject *smalltext.String) string {
	return subject.SliceToInclusive(b.End)
}

func (b RangeBounds) String() string     { return fmt.Sprintf("Range(%d, %d)", b.Start, b.End) }
func (b FromBounds) String() string      { return fmt.Sprintf("From(%d)", b.Start) }
func (b ToBounds) String() string        { return fmt.Sprintf("To(%d)", b.End) }
func (FullBounds) String() string        { return "Full" }
func (b InclusiveBounds) String() string { return fmt.Sprintf("Inclusive(%d, %d)", b.Start, b.End) }
func (b ToInclusiveBounds) String() string {
	return fmt.Sprintf("ToInclusive(%d)", b.End)
}

// OffsetShouldFault predicts whether a point operation taking a byte
// offset (Insert, InsertString, Truncate, SplitOff) must fault: the offset
// is valid only when it is at most the content length and falls on a
// character boundary.
func OffsetShouldFault(content string, offset int) bool {
	return offset > len(content) || offset < 0 || !isCharBoundary(content, offset)
}

// RemoveShouldFault predicts whether Remove must fault: the offset must
// additionally be strictly inside the content.
func RemoveShouldFault(content string, offset int) bool {
	return offset >= len(content) || offset < 0 || !isCharBoundary(content, offset)
}
