package oracle

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Scenario is one curated constructor + action sequence, loaded from the
// YAML corpus and replayed under every layout mode.
type Scenario struct {
	Name        string
	Constructor Constructor
	Actions     []Action
}

type scenarioFile struct {
	Scenarios []scenarioSpec `yaml:"scenarios"`
}

type scenarioSpec struct {
	Name        string          `yaml:"name"`
	Constructor constructorSpec `yaml:"constructor"`
	Actions     []actionSpec    `yaml:"actions"`
}

type constructorSpec struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

type actionSpec struct {
	Op     string      `yaml:"op"`
	Char   string      `yaml:"char"`
	Text   string      `yaml:"text"`
	Offset int         `yaml:"offset"`
	Keep   string      `yaml:"keep"`
	Bounds *boundsSpec `yaml:"bounds"`
}

type boundsSpec struct {
	Kind  string `yaml:"kind"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

// LoadScenarios reads a YAML scenario corpus.
func LoadScenarios(path string) ([]Scenario, error) {
	raw, readError := os.ReadFile(path)
	if readError != nil {
		return nil, fmt.Errorf("read scenario corpus: %w", readError)
	}

	var file scenarioFile
	if decodeError := yaml.Unmarshal(raw, &file); decodeError != nil {
		return nil, fmt.Errorf("decode scenario corpus %s: %w", path, decodeError)
	}

	scenarios := make([]Scenario, 0, len(file.Scenarios))

	for _, spec := range file.Scenarios {
		scenario, compileError := compileScenario(spec)
		if compileError != nil {
			return nil, fmt.Errorf("scenario %q: %w", spec.Name, compileError)
		}

		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

func compileScenario(spec scenarioSpec) (Scenario, error) {
	if spec.Name == "" {
		return Scenario{}, fmt.Errorf("missing name")
	}

	constructor, constructorError := compileConstructor(spec.Constructor)
	if constructorError != nil {
		return Scenario{}, constructorError
	}

	actions := make([]Action, 0, len(spec.Actions))

	for actionIndex, actionValue := range spec.Actions {
		action, actionError := compileAction(actionValue)
		if actionError != nil {
			return Scenario{}, fmt.Errorf("action %d: %w", actionIndex, actionError)
		}

		actions = append(actions, action)
	}

	return Scenario{Name: spec.Name, Constructor: constructor, Actions: actions}, nil
}

func compileConstructor(spec constructorSpec) (Constructor, error) {
	switch spec.Kind {
	case "", "empty":
		return EmptyConstructor{}, nil
	case "owned":
		return OwnedConstructor{Text: spec.Text}, nil
	case "borrowed":
		return BorrowedConstructor{Text: spec.Text}, nil
	default:
		return nil, fmt.Errorf("unknown constructor kind %q", spec.Kind)
	}
}

func compileAction(spec actionSpec) (Action, error) {
	switch spec.Op {
	case "slice":
		bounds, boundsError := compileBounds(spec.Bounds)
		if boundsError != nil {
			return nil, boundsError
		}

		return Slice{Bounds: bounds}, nil

	case "push":
		ch, charError := singleChar(spec.Char)
		if charError != nil {
			return nil, charError
		}

		return Push{Char: ch}, nil

	case "push-text":
		return PushText{Text: spec.Text}, nil

	case "truncate":
		return Truncate{Offset: spec.Offset}, nil

	case "pop":
		return Pop{}, nil

	case "remove":
		return Remove{Offset: spec.Offset}, nil

	case "insert":
		ch, charError := singleChar(spec.Char)
		if charError != nil {
			return nil, charError
		}

		return Insert{Offset: spec.Offset, Char: ch}, nil

	case "insert-text":
		return InsertText{Offset: spec.Offset, Text: spec.Text}, nil

	case "split-off":
		return SplitOff{Offset: spec.Offset}, nil

	case "clear":
		return Clear{}, nil

	case "into-text":
		return IntoText{}, nil

	case "retain":
		return Retain{Keep: spec.Keep}, nil

	default:
		return nil, fmt.Errorf("unknown op %q", spec.Op)
	}
}

func compileBounds(spec *boundsSpec) (Bounds, error) {
	if spec == nil {
		return nil, fmt.Errorf("slice op needs bounds")
	}

	switch spec.Kind {
	case "range":
		return RangeBounds{Start: spec.Start, End: spec.End}, nil
	case "from":
		return FromBounds{Start: spec.Start}, nil
	case "to":
		return ToBounds{End: spec.End}, nil
	case "full":
		return FullBounds{}, nil
	case "inclusive":
		return InclusiveBounds{Start: spec.Start, End: spec.End}, nil
	case "to-inclusive":
		return ToInclusiveBounds{End: spec.End}, nil
	default:
		return nil, fmt.Errorf("unknown bounds kind %q", spec.Kind)
	}
}

func singleChar(value string) (rune, error) {
	ch, size := utf8.DecodeRuneInString(value)
	if size == 0 || size != len(value) || ch == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("char must be exactly one character, got %q", value)
	}

	return ch, nil
}
