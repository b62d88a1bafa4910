package oracle

import (
	"fmt"
	"strings"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle/model"
)

// Action is one replayable operation descriptor. Every variant is
// self-contained: it carries exactly the operands needed to apply it
// deterministically, with no hidden state.
//
// apply runs the operation against both sides and returns a non-nil error
// on divergence: one side faulting without the other, or differing
// results. On success either both sides are updated to identical content
// or both have faulted and are unchanged; no action ever mutates only one
// side.
//
// Drain and ReplaceRange are deliberately absent from the vocabulary:
// their fault prediction has to be derived from the reference type's
// documented range semantics before they can be added, and a silently
// wrong predicate would be worse than a missing operation.
type Action interface {
	apply(exec *Executor, reference *model.Text, subject *smalltext.String) error
	String() string
}

// Slice reads a range of the content through one of the six bound shapes.
type Slice struct {
	Bounds Bounds
}

func (a Slice) apply(exec *Executor, reference *model.Text, subject *smalltext.String) error {
	if a.Bounds.ShouldFault(reference.String()) {
		return exec.requireBothFault(a,
			func() { _ = a.Bounds.sliceReference(reference) },
			func() { _ = a.Bounds.sliceSubject(subject) },
		)
	}

	referenceSlice := a.Bounds.sliceReference(reference)
	subjectSlice := a.Bounds.sliceSubject(subject)

	if referenceSlice != subjectSlice {
		return fmt.Errorf("%s: slice mismatch: reference=%q subject=%q", a, referenceSlice, subjectSlice)
	}

	return nil
}

func (a Slice) String() string { return fmt.Sprintf("Slice(%s)", a.Bounds) }

// Push appends one character. Never faults.
type Push struct {
	Char rune
}

func (a Push) apply(_ *Executor, reference *model.Text, subject *smalltext.String) error {
	reference.Push(a.Char)
	subject.Push(a.Char)

	return nil
}

func (a Push) String() string { return fmt.Sprintf("Push(%q)", a.Char) }

// PushText appends text. Never faults.
type PushText struct {
	Text string
}

func (a PushText) apply(_ *Executor, reference *model.Text, subject *smalltext.String) error {
	reference.PushString(a.Text)
	subject.PushString(a.Text)

	return nil
}

func (a PushText) String() string { return fmt.Sprintf("PushText(%q)", a.Text) }

// Truncate shortens the content to a byte offset.
type Truncate struct {
	Offset int
}

func (a Truncate) apply(exec *Executor, reference *model.Text, subject *smalltext.String) error {
	if OffsetShouldFault(reference.String(), a.Offset) {
		return exec.requireBothFault(a,
			func() { reference.Truncate(a.Offset) },
			func() { subject.Truncate(a.Offset) },
		)
	}

	reference.Truncate(a.Offset)
	subject.Truncate(a.Offset)

	return nil
}

func (a Truncate) String() string { return fmt.Sprintf("Truncate(%d)", a.Offset) }

// Pop removes the last character. Never faults; both sides must agree on
// the removed character and on emptiness.
type Pop struct{}

func (a Pop) apply(_ *Executor, reference *model.Text, subject *smalltext.String) error {
	referenceChar, referenceOK := reference.Pop()
	subjectChar, subjectOK := subject.Pop()

	if referenceOK != subjectOK || referenceChar != subjectChar {
		return fmt.Errorf("%s: result mismatch: reference=(%q,%v) subject=(%q,%v)",
			a, referenceChar, referenceOK, subjectChar, subjectOK)
	}

	return nil
}

func (Pop) String() string { return "Pop" }

// Remove deletes the character at a byte offset.
type Remove struct {
	Offset int
}

func (a Remove) apply(exec *Executor, reference *model.Text, subject *smalltext.String) error {
	if RemoveShouldFault(reference.String(), a.Offset) {
		return exec.requireBothFault(a,
			func() { _ = reference.Remove(a.Offset) },
			func() { _ = subject.Remove(a.Offset) },
		)
	}

	referenceChar := reference.Remove(a.Offset)
	subjectChar := subject.Remove(a.Offset)

	if referenceChar != subjectChar {
		return fmt.Errorf("%s: removed character mismatch: reference=%q subject=%q", a, referenceChar, subjectChar)
	}

	return nil
}

func (a Remove) String() string { return fmt.Sprintf("Remove(%d)", a.Offset) }

// Insert inserts one character at a byte offset.
type Insert struct {
	Offset int
	Char   rune
}

func (a Insert) apply(exec *Executor, reference *model.Text, subject *smalltext.String) error {
	if OffsetShouldFault(reference.String(), a.Offset) {
		return exec.requireBothFault(a,
			func() { reference.Insert(a.Offset, a.Char) },
			func() { subject.Insert(a.Offset, a.Char) },
		)
	}

	reference.Insert(a.Offset, a.Char)
	subject.Insert(a.Offset, a.Char)

	return nil
}

func (a Insert) String() string { return fmt.Sprintf("Insert(%d, %q)", a.Offset, a.Char) }

// InsertText inserts text at a byte offset.
type InsertText struct {
	Offset int
	Text   string
}

func (a InsertText) apply(exec *Executor, reference *model.Text, subject *smalltext.String) error {
	if OffsetShouldFault(reference.String(), a.Offset) {
		return exec.requireBothFault(a,
			func() { reference.InsertString(a.Offset, a.Text) },
			func() { subject.InsertString(a.Offset, a.Text) },
		)
	}

	reference.InsertString(a.Offset, a.Text)
	subject.InsertString(a.Offset, a.Text)

	return nil
}

func (a InsertText) String() string { return fmt.Sprintf("InsertText(%d, %q)", a.Offset, a.Text) }

// SplitOff truncates at a byte offset and keeps the remainder as a new
// value; both remainders must match.
type SplitOff struct {
	Offset int
}

func (a SplitOff) apply(exec *Executor, reference *model.Text, subject *smalltext.String) error {
	if OffsetShouldFault(reference.String(), a.Offset) {
		return exec.requireBothFault(a,
			func() { _ = reference.SplitOff(a.Offset) },
			func() { _ = subject.SplitOff(a.Offset) },
		)
	}

	referenceTail := reference.SplitOff(a.Offset)
	subjectTail := subject.SplitOff(a.Offset)

	if referenceTail.String() != subjectTail.String() {
		return fmt.Errorf("%s: tail mismatch: reference=%q subject=%q",
			a, referenceTail.String(), subjectTail.String())
	}

	return nil
}

func (a SplitOff) String() string { return fmt.Sprintf("SplitOff(%d)", a.Offset) }

// Clear removes all content. Never faults.
type Clear struct{}

func (Clear) apply(_ *Executor, reference *model.Text, subject *smalltext.String) error {
	reference.Clear()
	subject.Clear()

	return nil
}

func (Clear) String() string { return "Clear" }

// IntoText converts the subject into the reference text type and compares
// it against the reference content. Never faults and never mutates.
type IntoText struct{}

func (a IntoText) apply(_ *Executor, reference *model.Text, subject *smalltext.String) error {
	converted := subject.String()

	if reference.String() != converted {
		return fmt.Errorf("%s: conversion mismatch: reference=%q subject=%q", a, reference.String(), converted)
	}

	return nil
}

func (IntoText) String() string { return "IntoText" }

// Retain keeps only the characters contained in Keep. Never faults.
type Retain struct {
	Keep string
}

func (a Retain) apply(_ *Executor, reference *model.Text, subject *smalltext.String) error {
	keep := func(ch rune) bool { return strings.ContainsRune(a.Keep, ch) }

	reference.Retain(keep)
	subject.Retain(keep)

	return nil
}

func (a Retain) String() string { return fmt.Sprintf("Retain(%q)", a.Keep) }
