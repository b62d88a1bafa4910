// Package soak drives long random differential runs outside the testing
// framework.
//
// The generator here is deliberately simpler than the rapid generators in
// the oracle package: a seeded math/rand stream with the same operation
// mix, so a soak run is reproducible from its seed alone. There is no
// shrinking; a failing case reports its seed and full action history, and
// the minimal reproduction belongs to the property tests.
package soak

import (
	"math"
	"math/rand"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle"
)

// Config selects what one soak run executes.
type Config struct {
	Mode       smalltext.Mode
	Cases      int
	MaxActions int
	Seed       int64
}

// Failure is one diverged case.
type Failure struct {
	Case int
	Seed int64
	Err  error
}

// Report summarizes one soak run.
type Report struct {
	Mode     smalltext.Mode
	Cases    int
	Actions  int
	Failures []Failure
}

// Run executes cfg.Cases random cases. Each case derives its own seed from
// the run seed, so any single case can be replayed in isolation.
func Run(cfg Config) Report {
	report := Report{Mode: cfg.Mode}

	for caseIndex := 0; caseIndex < cfg.Cases; caseIndex++ {
		caseSeed := cfg.Seed + int64(caseIndex)
		rng := rand.New(rand.NewSource(caseSeed))

		constructor := randomConstructor(rng)
		actions := randomActions(rng, cfg.MaxActions)

		report.Cases++
		report.Actions += len(actions)

		if runError := oracle.NewExecutor(cfg.Mode).Run(constructor, actions); runError != nil {
			report.Failures = append(report.Failures, Failure{
				Case: caseIndex,
				Seed: caseSeed,
				Err:  runError,
			})
		}
	}

	return report
}

// runePalette mixes 1- to 4-byte characters so boundary math is exercised
// constantly.
var runePalette = []rune{
	'a', 'Z', '0', ' ', '\x00',
	'¡', 'Ь', 'ß',
	'຦', 'ⷠ', '', 'ℝ',
	'\U0001F300', '\U00010000', '\U0010FFFF',
}

func randomRune(rng *rand.Rand) rune {
	return runePalette[rng.Intn(len(runePalette))]
}

func randomText(rng *rand.Rand) string {
	length := rng.Intn(8)

	text := make([]rune, length)
	for index := range text {
		text[index] = randomRune(rng)
	}

	return string(text)
}

// randomOffset is biased toward plausible content offsets, with a tail of
// far-out values including the maximum representable offset.
func randomOffset(rng *rand.Rand) int {
	switch roulette := rng.Intn(100); {
	case roulette < 80:
		return rng.Intn(48)
	case roulette < 95:
		return rng.Intn(1 << 20)
	default:
		return math.MaxInt - rng.Intn(3)
	}
}

func randomConstructor(rng *rand.Rand) oracle.Constructor {
	switch rng.Intn(3) {
	case 0:
		return oracle.EmptyConstructor{}
	case 1:
		return oracle.OwnedConstructor{Text: randomText(rng)}
	default:
		return oracle.BorrowedConstructor{Text: randomText(rng)}
	}
}

func randomBounds(rng *rand.Rand) oracle.Bounds {
	switch rng.Intn(6) {
	case 0:
		return oracle.RangeBounds{Start: randomOffset(rng), End: randomOffset(rng)}
	case 1:
		return oracle.FromBounds{Start: randomOffset(rng)}
	case 2:
		return oracle.ToBounds{End: randomOffset(rng)}
	case 3:
		return oracle.FullBounds{}
	case 4:
		return oracle.InclusiveBounds{Start: randomOffset(rng), End: randomOffset(rng)}
	default:
		return oracle.ToInclusiveBounds{End: randomOffset(rng)}
	}
}

func randomAction(rng *rand.Rand) oracle.Action {
	switch rng.Intn(12) {
	case 0:
		return oracle.Slice{Bounds: randomBounds(rng)}
	case 1:
		return oracle.Push{Char: randomRune(rng)}
	case 2:
		return oracle.PushText{Text: randomText(rng)}
	case 3:
		return oracle.Truncate{Offset: randomOffset(rng)}
	case 4:
		return oracle.Pop{}
	case 5:
		return oracle.Remove{Offset: randomOffset(rng)}
	case 6:
		return oracle.Insert{Offset: randomOffset(rng), Char: randomRune(rng)}
	case 7:
		return oracle.InsertText{Offset: randomOffset(rng), Text: randomText(rng)}
	case 8:
		return oracle.SplitOff{Offset: randomOffset(rng)}
	case 9:
		return oracle.Clear{}
	case 10:
		return oracle.IntoText{}
	default:
		return oracle.Retain{Keep: randomText(rng)}
	}
}

func randomActions(rng *rand.Rand, maxActions int) []oracle.Action {
	count := rng.Intn(maxActions + 1)

	actions := make([]oracle.Action, count)
	for index := range actions {
		actions[index] = randomAction(rng)
	}

	return actions
}
