// Command smalltext-soak runs long random differential sequences against
// the smalltext oracle outside the go test framework.
//
// Usage:
//
//	smalltext-soak [--cases N] [--max-actions N] [--seed N] [--mode compact|prefixed|both]
//
// Every case is derived deterministically from the run seed, so a failing
// case can be replayed by rerunning with the same flags. The exit code is
// non-zero when any case diverges.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/calvinalkan/smalltext/internal/soak"
	"github.com/calvinalkan/smalltext/pkg/smalltext"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("smalltext-soak", pflag.ContinueOnError)

	cases := flags.Int("cases", 1000, "number of random cases per mode")
	maxActions := flags.Int("max-actions", 32, "maximum actions per case")
	seed := flags.Int64("seed", 0, "run seed (0 picks one from the clock)")
	modeName := flags.String("mode", "both", "layout mode: compact, prefixed, or both")

	if parseError := flags.Parse(args); parseError != nil {
		return parseError
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	modes, modeError := selectModes(*modeName)
	if modeError != nil {
		return modeError
	}

	fmt.Printf("soak: %d case(s) per mode, max %d action(s), seed %d\n", *cases, *maxActions, *seed)

	diverged := false

	for _, mode := range modes {
		report := soak.Run(soak.Config{
			Mode:       mode,
			Cases:      *cases,
			MaxActions: *maxActions,
			Seed:       *seed,
		})

		printReport(report)

		if len(report.Failures) > 0 {
			diverged = true
		}
	}

	if diverged {
		return errors.New("divergence detected")
	}

	return nil
}

func selectModes(name string) ([]smalltext.Mode, error) {
	switch name {
	case "compact":
		return []smalltext.Mode{smalltext.Compact}, nil
	case "prefixed":
		return []smalltext.Mode{smalltext.Prefixed}, nil
	case "both":
		return []smalltext.Mode{smalltext.Compact, smalltext.Prefixed}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want compact, prefixed, or both)", name)
	}
}

func printReport(report soak.Report) {
	if len(report.Failures) == 0 {
		color.Green("%s: %d case(s), %d action(s), no divergence", report.Mode, report.Cases, report.Actions)

		return
	}

	color.Red("%s: %d divergence(s) in %d case(s)", report.Mode, len(report.Failures), report.Cases)

	for _, failure := range report.Failures {
		color.Red("case %d (seed %d):", failure.Case, failure.Seed)
		fmt.Println(failure.Err)
	}
}
