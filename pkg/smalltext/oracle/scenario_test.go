package oracle_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle"
)

func TestScenarioCorpus(t *testing.T) {
	t.Parallel()

	scenarios, loadError := oracle.LoadScenarios(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, loadError)
	require.NotEmpty(t, scenarios)

	for _, mode := range []smalltext.Mode{smalltext.Compact, smalltext.Prefixed} {
		for _, scenario := range scenarios {
			mode, scenario := mode, scenario
			t.Run(mode.String()+"/"+scenario.Name, func(t *testing.T) {
				t.Parallel()

				runError := oracle.NewExecutor(mode).Run(scenario.Constructor, scenario.Actions)
				require.NoError(t, runError)
			})
		}
	}
}

func TestLoadScenarios_NegativeBoundsReplayAsFaults(t *testing.T) {
	t.Parallel()

	// Negative offsets are representable in the corpus; the replay must
	// treat them as predicted faults on both sides, never as a panic
	// escaping the executor.
	corpus := filepath.Join(t.TempDir(), "negative.yaml")
	writeFile(t, corpus, `
scenarios:
  - name: negative-offsets
    constructor: {kind: owned, text: "ab"}
    actions:
      - {op: slice, bounds: {kind: to-inclusive, end: -1}}
      - {op: slice, bounds: {kind: inclusive, start: -2, end: -1}}
      - {op: slice, bounds: {kind: range, start: -1, end: 1}}
      - {op: slice, bounds: {kind: from, start: -1}}
      - {op: slice, bounds: {kind: to, end: -1}}
      - {op: truncate, offset: -1}
      - {op: remove, offset: -1}
`)

	scenarios, loadError := oracle.LoadScenarios(corpus)
	require.NoError(t, loadError)
	require.Len(t, scenarios, 1)

	for _, mode := range []smalltext.Mode{smalltext.Compact, smalltext.Prefixed} {
		runError := oracle.NewExecutor(mode).Run(scenarios[0].Constructor, scenarios[0].Actions)
		require.NoError(t, runError)
	}
}

func TestLoadScenarios_RejectsUnknownOp(t *testing.T) {
	t.Parallel()

	corpus := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, corpus, `
scenarios:
  - name: broken
    constructor: {kind: empty}
    actions:
      - {op: drain, bounds: {kind: full}}
`)

	_, loadError := oracle.LoadScenarios(corpus)
	require.ErrorContains(t, loadError, `unknown op "drain"`)
}

func TestLoadScenarios_RejectsMultiCharChar(t *testing.T) {
	t.Parallel()

	corpus := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, corpus, `
scenarios:
  - name: broken
    constructor: {kind: empty}
    actions:
      - {op: push, char: "ab"}
`)

	_, loadError := oracle.LoadScenarios(corpus)
	require.ErrorContains(t, loadError, "exactly one character")
}
