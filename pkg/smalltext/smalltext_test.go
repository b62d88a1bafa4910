package smalltext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
)

func TestModes_InlineThresholds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 23, smalltext.Compact.MaxInline())
	assert.Equal(t, 19, smalltext.Prefixed.MaxInline())
}

func TestPromotionAndDemotion(t *testing.T) {
	t.Parallel()

	for _, mode := range []smalltext.Mode{smalltext.Compact, smalltext.Prefixed} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			value := smalltext.New(mode)
			require.True(t, value.IsInline())
			require.Equal(t, 0, value.Len())

			// Fill to exactly the threshold: still inline.
			value.PushString(strings.Repeat("x", mode.MaxInline()))
			require.True(t, value.IsInline())
			require.Equal(t, mode.MaxInline(), value.Len())

			// One more byte promotes.
			value.Push('y')
			require.False(t, value.IsInline())

			// Shrinking to the threshold demotes again.
			value.Truncate(mode.MaxInline())
			require.True(t, value.IsInline())
			require.Equal(t, strings.Repeat("x", mode.MaxInline()), value.String())
		})
	}
}

func TestPopAndRemoveMultibyte(t *testing.T) {
	t.Parallel()

	value := smalltext.FromString(smalltext.Compact, "aЬ\U0001F300")

	ch, ok := value.Pop()
	require.True(t, ok)
	assert.Equal(t, '\U0001F300', ch)

	assert.Equal(t, 'Ь', value.Remove(1))
	assert.Equal(t, "a", value.String())

	ch, ok = value.Pop()
	require.True(t, ok)
	assert.Equal(t, 'a', ch)

	_, ok = value.Pop()
	assert.False(t, ok)
}

func TestInsertValidatesBeforeAnyStorageChange(t *testing.T) {
	t.Parallel()

	value := smalltext.FromString(smalltext.Prefixed, "aЬc")
	require.True(t, value.IsInline())

	require.Panics(t, func() { value.Insert(2, 'x') })

	assert.True(t, value.IsInline())
	assert.Equal(t, "aЬc", value.String())
}

func TestSplitOff_InheritsMode(t *testing.T) {
	t.Parallel()

	value := smalltext.FromString(smalltext.Prefixed, "front and a tail long enough to spill")
	require.False(t, value.IsInline())

	tail := value.SplitOff(5)

	assert.Equal(t, "front", value.String())
	assert.True(t, value.IsInline())
	assert.Equal(t, " and a tail long enough to spill", tail.String())
	assert.Equal(t, smalltext.Prefixed, tail.Mode())
	assert.False(t, tail.IsInline())
}

func TestRetain(t *testing.T) {
	t.Parallel()

	value := smalltext.FromString(smalltext.Compact, "a1b2c3\U0001F300")
	value.Retain(func(ch rune) bool { return ch >= 'a' && ch <= 'z' })

	assert.Equal(t, "abc", value.String())
	assert.True(t, value.IsInline())
}

func TestClear_AlwaysInline(t *testing.T) {
	t.Parallel()

	value := smalltext.FromString(smalltext.Compact, strings.Repeat("long ", 20))
	require.False(t, value.IsInline())

	value.Clear()

	assert.Equal(t, 0, value.Len())
	assert.True(t, value.IsInline())
}

func TestSliceFaults(t *testing.T) {
	t.Parallel()

	value := smalltext.FromString(smalltext.Compact, "aЬ")

	assert.Equal(t, "aЬ", value.SliceFull())
	assert.Equal(t, "Ь", value.SliceFrom(1))
	assert.Equal(t, "a", value.SliceTo(1))
	assert.Equal(t, "aЬ", value.SliceInclusive(0, 2))
	assert.Equal(t, "aЬ", value.SliceToInclusive(2))

	assert.Panics(t, func() { value.Slice(1, 0) })
	assert.Panics(t, func() { value.Slice(0, 2) })
	assert.Panics(t, func() { value.SliceFrom(4) })
	assert.Panics(t, func() { value.SliceTo(2) })
	assert.Panics(t, func() { value.SliceInclusive(0, 1) })
	assert.Panics(t, func() { value.SliceToInclusive(3) })
}

func TestFaultPayload(t *testing.T) {
	t.Parallel()

	value := smalltext.FromString(smalltext.Compact, "ab")

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		fault, ok := recovered.(*smalltext.Fault)
		require.True(t, ok)
		assert.Equal(t, "Remove", fault.Op)
		assert.Equal(t, 5, fault.Offset)
		assert.Equal(t, 2, fault.Len)
		assert.Contains(t, fault.Error(), "out of range")
	}()

	value.Remove(5)
}

func TestFromBytes_CopiesBorrowedView(t *testing.T) {
	t.Parallel()

	borrowed := []byte("borrowed content that is long enough to be heap backed")
	value := smalltext.FromBytes(smalltext.Compact, borrowed)

	borrowed[0] = 'X'

	assert.Equal(t, byte('b'), value.String()[0])
}
