// Package smalltext provides a growable UTF-8 text value with a small-string
// optimization: content at or below the layout mode's inline threshold is
// stored inside the value itself, and only longer content is promoted to a
// separate heap allocation.
//
// # Basic Usage
//
//	s := smalltext.FromString(smalltext.Compact, "hello")
//	s.Push('!')
//	s.PushString(" world")
//
//	if s.IsInline() {
//	    // content still fits the inline buffer
//	}
//
// # Layout Modes
//
// Two modes are available:
//   - [Compact]: all inline bytes hold content.
//   - [Prefixed]: a few inline bytes are reserved for a comparison prefix
//     fragment, which is kept up to date even after heap promotion and lets
//     ordering comparisons short-circuit without touching heap content.
//
// The mode is chosen at construction time and never changes for the
// lifetime of a value.
//
// # Faults
//
// Offset-taking operations (Insert, Remove, Truncate, SplitOff, the Slice
// family) panic with a [*Fault] when the offset is out of range or does not
// fall on a character boundary, matching the behavior of slicing a native
// Go string with an invalid index. A Fault is a programming error, not a
// recoverable condition.
//
// # Concurrency
//
// Values are not safe for concurrent use. Each value is owned by a single
// goroutine.
package smalltext
