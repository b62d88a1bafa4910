package oracle

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle/model"
)

// orderingProbe is a fixed text both sides are compared against to check
// ordering consistency after every step.
const orderingProbe = "ordering test"

// CheckInvariants verifies the per-step invariants between the reference
// and the subject:
//
//  1. Content is byte-identical.
//  2. Reported lengths are equal.
//  3. The subject is inline iff its length is at most the mode threshold.
//  4. Ordering against a fixed probe text agrees on both sides.
//  5. A fresh subject built from the reference content compares equal to
//     the live subject.
//
// The returned error names the violated invariant.
func CheckInvariants(reference *model.Text, subject *smalltext.String) error {
	if diff := cmp.Diff(reference.String(), subject.String()); diff != "" {
		return fmt.Errorf("content mismatch (-reference +subject):\n%s", diff)
	}

	if reference.Len() != subject.Len() {
		return fmt.Errorf("length mismatch: reference=%d subject=%d", reference.Len(), subject.Len())
	}

	maxInline := subject.Mode().MaxInline()

	wantInline := subject.Len() <= maxInline
	if subject.IsInline() != wantInline {
		return fmt.Errorf("inline classification mismatch: len=%d maxInline=%d inline=%v",
			subject.Len(), maxInline, subject.IsInline())
	}

	referenceOrder := reference.CompareString(orderingProbe)
	subjectOrder := subject.CompareString(orderingProbe)

	if referenceOrder != subjectOrder {
		return fmt.Errorf("ordering against %q diverged: reference=%d subject=%d",
			orderingProbe, referenceOrder, subjectOrder)
	}

	rebuilt := smalltext.FromString(subject.Mode(), reference.String())
	if verdict := subject.Compare(rebuilt); verdict != 0 {
		return fmt.Errorf("subject rebuilt from reference content is not equal: compare=%d", verdict)
	}

	return nil
}
