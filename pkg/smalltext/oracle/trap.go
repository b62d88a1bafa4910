package oracle

// trap captures faults from a single call so a predicted fault does not
// unwind the whole test case.
//
// The capture discipline is scoped: the recover handler is installed for
// exactly one call and torn down on every exit path, normal or faulting,
// by the deferred function itself. The panic payload is recorded on the
// trap rather than in any process-wide location, so independent executors
// never contend; one trap must still not be used from two goroutines at
// once.
type trap struct {
	// last is the payload of the most recently captured fault. It is kept
	// only for diagnostics in divergence reports.
	last any
}

// capture runs call and reports whether it faulted. A captured fault is
// swallowed (its diagnostic is recorded, not printed); a normal return is
// reported as false.
func (tr *trap) capture(call func()) (faulted bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			tr.last = recovered
			faulted = true
		}
	}()

	call()

	return false
}

// lastFault returns the most recently captured fault payload, or nil when
// nothing has been captured.
func (tr *trap) lastFault() any {
	return tr.last
}
