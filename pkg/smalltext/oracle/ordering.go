package oracle

import (
	"fmt"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle/model"
)

// CheckOrdering verifies that ordering two subject values built from left
// and right matches ordering the corresponding reference values.
//
// Ordering is content-defined: the property must hold no matter how the
// subject stores either value internally (inline, heap-backed, or a
// prefix fragment plus remainder).
func CheckOrdering(mode smalltext.Mode, left, right string) error {
	referenceVerdict := model.FromString(left).Compare(model.FromString(right))

	subjectLeft := smalltext.FromString(mode, left)
	subjectRight := smalltext.FromString(mode, right)
	subjectVerdict := subjectLeft.Compare(subjectRight)

	if referenceVerdict != subjectVerdict {
		return fmt.Errorf("ordering diverged [%s]: reference=%d subject=%d\nleft=%q\nright=%q",
			mode, referenceVerdict, subjectVerdict, left, right)
	}

	return nil
}
