package permute_test

import (
	"testing"

	"github.com/egdaemon/permute"
	"github.com/stretchr/testify/require"
)

func collect(it *permute.Odometer) []permute.Combination {
	var results []permute.Combination
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		results = append(results, c)
	}

	return results
}

func TestOdometer(t *testing.T) {
	t.Run("cross product in odometer order", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(
			permute.Values(1, 2),
			permute.Values("A", "B"),
		))

		results := collect(it)
		require.Len(t, results, 4)
		require.Equal(t, []any{1, "A"}, results[0].Values)
		require.Equal(t, []any{1, "B"}, results[1].Values)
		require.Equal(t, []any{2, "A"}, results[2].Values)
		require.Equal(t, []any{2, "B"}, results[3].Values)
	})

	t.Run("yield count is the product of the sizes", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(
			permute.Values(1, 2),
			permute.Values("a", "b", "c"),
			permute.Values(true, false),
		))

		require.Len(t, collect(it), 12)
	})

	t.Run("last dimension varies fastest, first is non decreasing", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(
			permute.Values(0, 1, 2),
			permute.Values(0, 1),
		))

		results := collect(it)
		require.Len(t, results, 6)
		for i, c := range results {
			require.Equal(t, i%2, c.Indices[1])
			require.Equal(t, i/2, c.Indices[0])
			require.Equal(t, i, c.Pos)
			if i > 0 {
				require.GreaterOrEqual(t, c.Indices[0], results[i-1].Indices[0])
			}
		}
	})

	t.Run("index vectors are distinct", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(
			permute.Values(0, 1),
			permute.Values(0, 1, 2),
		))

		seen := make(map[[2]int]bool)
		for _, c := range collect(it) {
			key := [2]int{c.Indices[0], c.Indices[1]}
			require.False(t, seen[key], "duplicate index vector %v", c.Indices)
			seen[key] = true
		}

		require.Len(t, seen, 6)
	})

	t.Run("no dimensions yields nothing", func(t *testing.T) {
		require.Empty(t, collect(permute.NewOdometer(permute.NewSet())))
	})

	t.Run("empty first dimension yields nothing", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(
			permute.Values(),
			permute.Values(1, 2),
		))

		require.Empty(t, collect(it))
	})

	t.Run("empty later dimension yields nothing", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(
			permute.Values(1, 2),
			permute.Values(),
		))

		require.Empty(t, collect(it))
	})

	t.Run("single dimension", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(permute.Values("x", "y", "z")))

		results := collect(it)
		require.Len(t, results, 3)
		require.Equal(t, []any{"x"}, results[0].Values)
		require.Equal(t, []int{2}, results[2].Indices)
	})

	t.Run("yielded combinations survive subsequent advances", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(
			permute.Values(1, 2),
			permute.Values("A", "B"),
		))

		first, ok := it.Next()
		require.True(t, ok)
		collect(it)

		require.Equal(t, []any{1, "A"}, first.Values)
		require.Equal(t, []int{0, 0}, first.Indices)
	})

	t.Run("exhausted iterators stay exhausted", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(permute.Values(1)))
		collect(it)

		_, ok := it.Next()
		require.False(t, ok)
		_, ok = it.Next()
		require.False(t, ok)
	})

	t.Run("All stops when the consumer stops pulling", func(t *testing.T) {
		it := permute.NewOdometer(permute.NewSet(permute.Values(1, 2, 3, 4, 5)))

		count := 0
		for range it.All() {
			if count++; count >= 2 {
				break
			}
		}

		require.Equal(t, 2, count)

		// the cursor advanced past the consumed combinations only.
		next, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, []any{3}, next.Values)
	})
}
