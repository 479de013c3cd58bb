package errorsx_test

import (
	"testing"

	"github.com/egdaemon/permute/internal/errorsx"
	"github.com/stretchr/testify/require"
)

func TestErrorsx(t *testing.T) {
	t.Run("Wrap preserves nil", func(t *testing.T) {
		require.NoError(t, errorsx.Wrap(nil, "context"))
		require.NoError(t, errorsx.Wrapf(nil, "context %d", 1))
	})

	t.Run("Wrap annotates", func(t *testing.T) {
		err := errorsx.Wrap(errorsx.New("derp"), "context")
		require.Error(t, err)
		require.Contains(t, err.Error(), "context")
		require.Contains(t, err.Error(), "derp")
	})

	t.Run("Compact returns the first non nil error", func(t *testing.T) {
		expected := errorsx.New("derp")
		require.NoError(t, errorsx.Compact(nil, nil))
		require.ErrorIs(t, errorsx.Compact(nil, expected, errorsx.New("other")), expected)
	})

	t.Run("Zero discards the error", func(t *testing.T) {
		require.Equal(t, 0, errorsx.Zero(1, errorsx.New("derp")))
		require.Equal(t, 1, errorsx.Zero(1, nil))
	})

	t.Run("String falls back when nil", func(t *testing.T) {
		require.Equal(t, "ok", errorsx.String(nil, "ok"))
		require.Equal(t, "derp", errorsx.String(errorsx.New("derp"), "ok"))
	})
}
