package permute_test

import (
	"testing"

	"github.com/egdaemon/permute"
	"github.com/stretchr/testify/require"
)

func TestCaseName(t *testing.T) {
	c := permute.Combination{
		Values:  []any{1, "A"},
		Indices: []int{0, 1},
		Pos:     3,
	}

	t.Run("default template renders the index list", func(t *testing.T) {
		require.Equal(t, "[0 1]", permute.CaseName("", c))
	})

	t.Run("positional placeholders render values, not indices", func(t *testing.T) {
		require.Equal(t, "1/A", permute.CaseName("{0}/{1}", c))
	})

	t.Run("index renders the combination ordinal", func(t *testing.T) {
		require.Equal(t, "case 3", permute.CaseName("case {index}", c))
	})

	t.Run("aggregate and positional placeholders compose", func(t *testing.T) {
		require.Equal(t, "[0 1] 1-A #3", permute.CaseName("{list} {0}-{1} #{index}", c))
	})

	t.Run("out of range positions render verbatim", func(t *testing.T) {
		require.Equal(t, "{7}", permute.CaseName("{7}", c))
	})

	t.Run("substituted values are not re-expanded", func(t *testing.T) {
		tricky := permute.Combination{Values: []any{"{1}", "safe"}, Indices: []int{0, 0}}
		require.Equal(t, "{1} safe", permute.CaseName("{0} {1}", tricky))
	})

	t.Run("map values render with sorted keys", func(t *testing.T) {
		c := permute.Combination{
			Values:  []any{map[string]int{"b": 2, "a": 1}},
			Indices: []int{0},
		}

		require.Equal(t, "map[a:1 b:2]", permute.CaseName("{0}", c))
	})
}
