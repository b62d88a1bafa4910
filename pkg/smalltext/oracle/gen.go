package oracle

import (
	"math"

	"pgregory.net/rapid"
)

// Generators for drawing Constructor, Action, and Bounds values at random.
//
// rapid is the generation collaborator: it handles nested operand
// generation and shrinks a failing sequence to a minimal reproduction.
// Offsets are biased toward the small values that land near real content
// lengths, with a tail of huge values (including the maximum representable
// offset) to exercise the out-of-range and overflow-guard predicates.

// offsetGenerator draws byte offsets. Roughly three quarters land in
// 0..48, which straddles both inline thresholds; the rest are far out of
// range, including math.MaxInt for the +1 overflow guard.
func offsetGenerator() *rapid.Generator[int] {
	return rapid.OneOf(
		rapid.IntRange(0, 48),
		rapid.IntRange(0, 48),
		rapid.IntRange(0, 48),
		rapid.OneOf(
			rapid.IntRange(49, 1<<20),
			rapid.SampledFrom([]int{math.MaxInt, math.MaxInt - 1, math.MaxInt / 2}),
		),
	)
}

// textGenerator draws text fragments, empty included. rapid.Rune covers
// all encoding widths, so fragments naturally mix 1- to 4-byte characters.
func textGenerator() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.Rune(), 0, 32, -1)
}

// BoundsGenerator draws one of the six bound shapes with generated
// offsets.
func BoundsGenerator() *rapid.Generator[Bounds] {
	return rapid.OneOf(
		rapid.Custom(func(t *rapid.T) Bounds {
			return RangeBounds{Start: offsetGenerator().Draw(t, "start"), End: offsetGenerator().Draw(t, "end")}
		}),
		rapid.Custom(func(t *rapid.T) Bounds {
			return FromBounds{Start: offsetGenerator().Draw(t, "start")}
		}),
		rapid.Custom(func(t *rapid.T) Bounds {
			return ToBounds{End: offsetGenerator().Draw(t, "end")}
		}),
		rapid.Just(Bounds(FullBounds{})),
		rapid.Custom(func(t *rapid.T) Bounds {
			return InclusiveBounds{Start: offsetGenerator().Draw(t, "start"), End: offsetGenerator().Draw(t, "end")}
		}),
		rapid.Custom(func(t *rapid.T) Bounds {
			return ToInclusiveBounds{End: offsetGenerator().Draw(t, "end")}
		}),
	)
}

// ConstructorGenerator draws one of the three constructors.
func ConstructorGenerator() *rapid.Generator[Constructor] {
	return rapid.OneOf(
		rapid.Just(Constructor(EmptyConstructor{})),
		rapid.Custom(func(t *rapid.T) Constructor {
			return OwnedConstructor{Text: textGenerator().Draw(t, "text")}
		}),
		rapid.Custom(func(t *rapid.T) Constructor {
			return BorrowedConstructor{Text: textGenerator().Draw(t, "text")}
		}),
	)
}

// ActionGenerator draws one action with generated operands.
func ActionGenerator() *rapid.Generator[Action] {
	return rapid.OneOf(
		rapid.Custom(func(t *rapid.T) Action {
			return Slice{Bounds: BoundsGenerator().Draw(t, "bounds")}
		}),
		rapid.Custom(func(t *rapid.T) Action {
			return Push{Char: rapid.Rune().Draw(t, "char")}
		}),
		rapid.Custom(func(t *rapid.T) Action {
			return PushText{Text: textGenerator().Draw(t, "text")}
		}),
		rapid.Custom(func(t *rapid.T) Action {
			return Truncate{Offset: offsetGenerator().Draw(t, "offset")}
		}),
		rapid.Just(Action(Pop{})),
		rapid.Custom(func(t *rapid.T) Action {
			return Remove{Offset: offsetGenerator().Draw(t, "offset")}
		}),
		rapid.Custom(func(t *rapid.T) Action {
			return Insert{Offset: offsetGenerator().Draw(t, "offset"), Char: rapid.Rune().Draw(t, "char")}
		}),
		rapid.Custom(func(t *rapid.T) Action {
			return InsertText{Offset: offsetGenerator().Draw(t, "offset"), Text: textGenerator().Draw(t, "text")}
		}),
		rapid.Custom(func(t *rapid.T) Action {
			return SplitOff{Offset: offsetGenerator().Draw(t, "offset")}
		}),
		rapid.Just(Action(Clear{})),
		rapid.Just(Action(IntoText{})),
		rapid.Custom(func(t *rapid.T) Action {
			return Retain{Keep: textGenerator().Draw(t, "keep")}
		}),
	)
}

// ActionsGenerator draws an ordered action sequence.
func ActionsGenerator() *rapid.Generator[[]Action] {
	return rapid.SliceOfN(ActionGenerator(), 0, 40)
}
