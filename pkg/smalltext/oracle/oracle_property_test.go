package oracle_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle"
)

// The property tests draw a constructor plus an action sequence and replay
// it under one layout mode. Any divergence between reference and subject
// fails with the full action history; rapid shrinks the sequence to a
// minimal reproduction. Each property also doubles as a coverage-guided
// fuzz target via rapid.MakeFuzz.

func testEverythingCompact(t *rapid.T) {
	constructor := oracle.ConstructorGenerator().Draw(t, "constructor")
	actions := oracle.ActionsGenerator().Draw(t, "actions")

	if runError := oracle.NewExecutor(smalltext.Compact).Run(constructor, actions); runError != nil {
		t.Fatalf("divergence: %v", runError)
	}
}

func TestEverything_Compact(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testEverythingCompact)
}

func FuzzEverything_Compact(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testEverythingCompact))
}

func testEverythingPrefixed(t *rapid.T) {
	constructor := oracle.ConstructorGenerator().Draw(t, "constructor")
	actions := oracle.ActionsGenerator().Draw(t, "actions")

	if runError := oracle.NewExecutor(smalltext.Prefixed).Run(constructor, actions); runError != nil {
		t.Fatalf("divergence: %v", runError)
	}
}

func TestEverything_Prefixed(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testEverythingPrefixed)
}

func FuzzEverything_Prefixed(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testEverythingPrefixed))
}

func testOrderingCompact(t *rapid.T) {
	left := rapid.String().Draw(t, "left")
	right := rapid.String().Draw(t, "right")

	if orderingError := oracle.CheckOrdering(smalltext.Compact, left, right); orderingError != nil {
		t.Fatalf("%v", orderingError)
	}
}

func TestOrdering_Compact(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testOrderingCompact)
}

func FuzzOrdering_Compact(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testOrderingCompact))
}

func testOrderingPrefixed(t *rapid.T) {
	left := rapid.String().Draw(t, "left")
	right := rapid.String().Draw(t, "right")

	if orderingError := oracle.CheckOrdering(smalltext.Prefixed, left, right); orderingError != nil {
		t.Fatalf("%v", orderingError)
	}
}

func TestOrdering_Prefixed(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testOrderingPrefixed)
}

func FuzzOrdering_Prefixed(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testOrderingPrefixed))
}

// Ordering must agree for texts that differ only past the comparison
// prefix fragment, and for texts where one is a strict prefix of the
// other.
func testOrderingSharedPrefix(t *rapid.T) {
	shared := rapid.String().Draw(t, "shared")
	leftTail := rapid.String().Draw(t, "leftTail")
	rightTail := rapid.String().Draw(t, "rightTail")

	if orderingError := oracle.CheckOrdering(smalltext.Prefixed, shared+leftTail, shared+rightTail); orderingError != nil {
		t.Fatalf("%v", orderingError)
	}
}

func TestOrdering_SharedPrefix(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testOrderingSharedPrefix)
}

func FuzzOrdering_SharedPrefix(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testOrderingSharedPrefix))
}
