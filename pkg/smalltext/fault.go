package smalltext

import "fmt"

// Fault is the panic payload for invalid offset-taking operations.
//
// A Fault always means the caller passed an offset that is out of range or
// not on a character boundary. It is never returned as an error; it is
// delivered via panic, and callers that want to probe fault behavior must
// recover it themselves.
type Fault struct {
	// Op is the operation that faulted, e.g. "Insert" or "SliceTo".
	Op string

	// Offset is the offending byte offset.
	Offset int

	// Len is the content length at the time of the fault.
	Len int

	// Reason describes why the offset was rejected.
	Reason string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("smalltext: %s(%d) on content of length %d: %s", f.Op, f.Offset, f.Len, f.Reason)
}

func faultOutOfRange(op string, offset, length int) {
	panic(&Fault{Op: op, Offset: offset, Len: length, Reason: "offset out of range"})
}

func faultNotBoundary(op string, offset, length int) {
	panic(&Fault{Op: op, Offset: offset, Len: length, Reason: "offset is not a character boundary"})
}

func faultInvertedRange(op string, start, end, length int) {
	panic(&Fault{
		Op:     op,
		Offset: start,
		Len:    length,
		Reason: fmt.Sprintf("range start %d is greater than end %d", start, end),
	})
}
