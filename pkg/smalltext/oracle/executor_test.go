package oracle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
)

func TestExecutor_RunCleanSequence(t *testing.T) {
	t.Parallel()

	runError := NewExecutor(smalltext.Compact).Run(
		OwnedConstructor{Text: "hello"},
		[]Action{
			Push{Char: '!'},
			PushText{Text: " world"},
			Slice{Bounds: RangeBounds{Start: 0, End: 5}},
			SplitOff{Offset: 6},
			Pop{},
			IntoText{},
		},
	)
	require.NoError(t, runError)
}

func TestExecutor_RunPredictedFaultSequence(t *testing.T) {
	t.Parallel()

	// Every step here must fault on both sides; the run itself succeeds.
	runError := NewExecutor(smalltext.Prefixed).Run(
		OwnedConstructor{Text: "Ь"},
		[]Action{
			Slice{Bounds: FromBounds{Start: 1}},
			Remove{Offset: 1},
			Truncate{Offset: 1},
			InsertText{Offset: 1, Text: "x"},
		},
	)
	require.NoError(t, runError)
}

func TestTrap_CaptureRestoresOnBothPaths(t *testing.T) {
	t.Parallel()

	var tr trap

	require.False(t, tr.capture(func() {}))
	require.Nil(t, tr.lastFault())

	require.True(t, tr.capture(func() { panic("boom") }))
	require.Equal(t, "boom", tr.lastFault())

	// A later clean call leaves the previous diagnostic in place.
	require.False(t, tr.capture(func() {}))
	require.Equal(t, "boom", tr.lastFault())
}

func TestFormatHistory_MarksDivergentStep(t *testing.T) {
	t.Parallel()

	history := formatHistory(
		OwnedConstructor{Text: "ab"},
		[]Action{Push{Char: 'c'}, Pop{}, Clear{}},
		1,
	)

	assert.Contains(t, history, `FromText("ab")`)
	assert.Contains(t, history, "→ Pop  ← divergence")
	assert.Contains(t, history, "1 action(s) not reached")
	assert.NotContains(t, history, "  Clear\n")

	lines := strings.Split(history, "\n")
	assert.Equal(t, "History:", strings.TrimSpace(lines[0]))
}
