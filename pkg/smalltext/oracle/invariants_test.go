package oracle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle/model"
)

func TestCheckInvariants_HoldsForMatchingPair(t *testing.T) {
	t.Parallel()

	for _, mode := range []smalltext.Mode{smalltext.Compact, smalltext.Prefixed} {
		for _, content := range []string{
			"",
			"short",
			strings.Repeat("x", mode.MaxInline()),
			strings.Repeat("x", mode.MaxInline()+1),
			"multi Ь byte \U0001F300 content that spills to the heap",
		} {
			require.NoError(t,
				oracle.CheckInvariants(model.FromString(content), smalltext.FromString(mode, content)),
				"mode=%s content=%q", mode, content)
		}
	}
}

func TestCheckInvariants_ReportsContentMismatch(t *testing.T) {
	t.Parallel()

	checkError := oracle.CheckInvariants(
		model.FromString("expected"),
		smalltext.FromString(smalltext.Compact, "actual"),
	)

	require.Error(t, checkError)
	assert.Contains(t, checkError.Error(), "content mismatch")
}

func TestCheckOrdering_Fixed(t *testing.T) {
	t.Parallel()

	for _, mode := range []smalltext.Mode{smalltext.Compact, smalltext.Prefixed} {
		assert.NoError(t, oracle.CheckOrdering(mode, "", ""))
		assert.NoError(t, oracle.CheckOrdering(mode, "a", "b"))
		assert.NoError(t, oracle.CheckOrdering(mode, "same", "same"))
		assert.NoError(t, oracle.CheckOrdering(mode, "prefix", "prefix and more"))
	}
}
