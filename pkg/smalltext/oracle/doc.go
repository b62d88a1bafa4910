// Package oracle is a model-based differential test oracle for the
// smalltext SSO type.
//
// The oracle replays ordered sequences of operations against two sides at
// once: the trusted reference text ([model.Text], ground truth) and the
// smalltext subject under test. For every offset-taking operation it first
// predicts, from the reference content alone, whether the call must fault;
// it never consults the subject to decide. Both sides must then either
// complete with identical results or both fault. After every step the
// invariant checker verifies content equality, length equality,
// inline-vs-threshold classification, and ordering consistency.
//
// The building blocks:
//
//   - [Bounds] and its six shapes, with ShouldFault as the pure bound
//     predicate.
//   - [Action], a closed vocabulary of replayable operation descriptors.
//   - [Constructor], the three ways to build a (reference, subject) pair.
//   - [Executor], which runs one constructor plus an action sequence and
//     checks invariants after each step.
//   - [CheckOrdering], the standalone ordering oracle.
//
// Random generation and shrinking come from pgregory.net/rapid via the
// generators in gen.go. Curated sequences live in testdata as YAML and are
// replayed by [LoadScenarios].
//
// The executor captures faults through a per-executor trap, so independent
// test cases can run in parallel; a single Executor must not be shared
// across goroutines.
package oracle
