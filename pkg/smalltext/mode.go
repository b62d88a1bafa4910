package smalltext

const (
	// inlineBufferSize is the number of content bytes the in-value buffer
	// can hold before any mode-specific reservation is applied.
	inlineBufferSize = 23

	// prefixFragmentSize is the number of leading content bytes the
	// Prefixed mode mirrors into its comparison fragment.
	prefixFragmentSize = 4
)

// Mode selects the internal representation strategy of a [String].
//
// A Mode is a fixed capability: it exposes the inline-capacity threshold
// and is consulted at construction time only. Mutations never change the
// mode of an existing value.
type Mode interface {
	// MaxInline is the largest content length (in bytes) that is stored
	// inline. Content longer than MaxInline is heap-backed; content at or
	// below it is always inline.
	MaxInline() int

	String() string
}

// Compact stores up to 23 bytes of content inline with no reserved bytes.
var Compact Mode = compactMode{}

// Prefixed reserves 4 inline bytes for a comparison prefix fragment and
// stores up to 19 bytes of content inline. The fragment is maintained even
// for heap-backed content so comparisons can short-circuit on it.
var Prefixed Mode = prefixedMode{}

type compactMode struct{}

func (compactMode) MaxInline() int { return inlineBufferSize }
func (compactMode) String() string { return "Compact" }

type prefixedMode struct{}

func (prefixedMode) MaxInline() int { return inlineBufferSize - prefixFragmentSize }
func (prefixedMode) String() string { return "Prefixed" }
