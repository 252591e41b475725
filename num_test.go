package fp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSubWraps(t *testing.T) {
	require.Equal(t, uint8(255), Sub[uint8](1, 2))
	require.Equal(t, uint(math.MaxUint), Sub[uint](1, 2))
	require.Equal(t, -1, Sub(1, 2))
}

func TestSatSub(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Uint64().Draw(t, "a")
		b := rapid.Uint64().Draw(t, "b")

		got := SatSub(a, b)
		if a >= b {
			require.Equal(t, a-b, got)
		} else {
			require.Zero(t, got)
		}
	})
}

func TestAdd(t *testing.T) {
	require.Equal(t, 5, Add(2, 3))
	require.Equal(t, 2.5, Add(1.0, 1.5))
}
