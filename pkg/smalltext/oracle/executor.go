package oracle

import (
	"fmt"
	"strings"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
)

// Executor replays one constructor plus an ordered action sequence against
// the (reference, subject) pair, running the invariant checker after
// construction and again after every action.
//
// An Executor is single-use state for one test case at a time and must not
// be shared across goroutines; separate executors are fully independent,
// so parallel test cases each get their own.
type Executor struct {
	mode smalltext.Mode
	trap trap
}

// NewExecutor returns an executor for the given layout mode.
func NewExecutor(mode smalltext.Mode) *Executor {
	return &Executor{mode: mode}
}

// Run builds the pair and applies every action in order. It returns nil
// when the whole sequence completes with all invariants holding, and
// otherwise an error identifying the failing step, the divergence or
// violated invariant, and the full action history up to that point.
func (exec *Executor) Run(constructor Constructor, actions []Action) error {
	reference, subject := constructor.Construct(exec.mode)

	if invariantError := CheckInvariants(reference, subject); invariantError != nil {
		return fmt.Errorf("%s [%s]: invariant violated after construction: %w\n%s",
			constructor, exec.mode, invariantError, formatHistory(constructor, actions, -1))
	}

	for stepIndex, action := range actions {
		if applyError := action.apply(exec, reference, subject); applyError != nil {
			return fmt.Errorf("step %d [%s]: %w\n%s",
				stepIndex, exec.mode, applyError, formatHistory(constructor, actions, stepIndex))
		}

		if invariantError := CheckInvariants(reference, subject); invariantError != nil {
			return fmt.Errorf("step %d (%s) [%s]: invariant violated: %w\n%s",
				stepIndex, action, exec.mode, invariantError, formatHistory(constructor, actions, stepIndex))
		}
	}

	return nil
}

// formatHistory renders the constructor and action history with the
// divergent step marked, so a failure report is replayable by eye.
func formatHistory(constructor Constructor, actions []Action, failingIndex int) string {
	var builder strings.Builder

	builder.WriteString("History:\n  ")
	builder.WriteString(constructor.String())

	for actionIndex, action := range actions {
		builder.WriteString("\n")

		if actionIndex == failingIndex {
			builder.WriteString("→ ")
			builder.WriteString(action.String())
			builder.WriteString("  ← divergence")
		} else {
			builder.WriteString("  ")
			builder.WriteString(action.String())
		}

		// Everything after the failing step never executed.
		if actionIndex == failingIndex {
			remaining := len(actions) - actionIndex - 1
			if remaining > 0 {
				builder.WriteString(fmt.Sprintf("\n  … %d action(s) not reached", remaining))
			}

			break
		}
	}

	return builder.String()
}

// requireBothFault applies a predicted-fault operation to both sides and
// asserts each actually faulted. Used only after the bound or offset
// predicate said the operation must fault.
func (exec *Executor) requireBothFault(action Action, referenceCall, subjectCall func()) error {
	if !exec.trap.capture(referenceCall) {
		return fmt.Errorf("%s: fault was predicted but the reference completed normally", action)
	}

	referenceFault := exec.trap.lastFault()

	if !exec.trap.capture(subjectCall) {
		return fmt.Errorf("%s: reference faulted (%v) but the subject completed normally", action, referenceFault)
	}

	return nil
}
