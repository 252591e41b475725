package tuple

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// hops is a Copyable slice standing in for any pair slot that owns
// reference state.
type hops []uint32

func (h hops) Copy() hops {
	c := make(hops, len(h))
	copy(c, h)

	return c
}

func TestDuplicate(t *testing.T) {
	f := func(a int) bool {
		return Duplicate(a) == NewT2(a, a)
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestDuplicateIndependent(t *testing.T) {
	pair := Duplicate(hops{1, 2, 3})
	require.Equal(t, pair.First(), pair.Second())

	first := pair.First()
	first[0] = 99

	require.Equal(t, hops{1, 2, 3}, pair.Second())
}

// A plain slice is not Copyable, so both slots share one backing array.
func TestDuplicateNonCopyableShares(t *testing.T) {
	pair := Duplicate([]uint32{1, 2})

	first := pair.First()
	first[0] = 99

	require.Equal(t, []uint32{99, 2}, pair.Second())
}

func TestConsProjections(t *testing.T) {
	f := func(a int, b string) bool {
		p := Cons(a, b)
		x, y := p.Unpack()

		return First(p) == a && Second(p) == b &&
			p.First() == a && p.Second() == b &&
			x == a && y == b
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestSpreadGather(t *testing.T) {
	t.Parallel()

	join := func(a int, b string) string {
		return strconv.Itoa(a) + b
	}

	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int().Draw(t, "a")
		b := rapid.String().Draw(t, "b")

		require.Equal(t, join(a, b), Spread(join)(Cons(a, b)))
		require.Equal(t, join(a, b), Gather(Spread(join))(a, b))
	})
}

func TestMapFirstSecond(t *testing.T) {
	double := func(x int) int { return x * 2 }
	show := strconv.Itoa

	f := func(a int, b int) bool {
		p := Cons(a, b)

		first := MapFirst[int, int](show)(p) == NewT2(show(a), b)
		second := MapSecond[int, int](show)(p) == NewT2(a, show(b))

		// Mapping twice is mapping the composition once.
		twiceFirst := MapFirst[int, int](show)(
			MapFirst[int, int](double)(p),
		) == MapFirst[int, int](func(x int) string {
			return show(double(x))
		})(p)
		twiceSecond := MapSecond[int, int](show)(
			MapSecond[int, int](double)(p),
		) == MapSecond[int, int](func(x int) string {
			return show(double(x))
		})(p)

		return first && second && twiceFirst && twiceSecond
	}

	require.NoError(t, quick.Check(f, nil))

	require.Equal(t, NewT2(2, 2), MapFirst[int, int](double)(NewT2(1, 2)))
	require.Equal(t, NewT2(1, 4), MapSecond[int, int](double)(NewT2(1, 2)))
}

func TestSwapBimapPair(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	show := strconv.Itoa

	f := func(a int, b bool) bool {
		p := Cons(a, b)

		swap := Swap(Swap(p)) == p && Swap(p) == NewT2(b, a)
		bimap := Bimap(inc, func(v bool) bool { return !v })(p) ==
			NewT2(a+1, !b)
		pair := Pair(inc, show)(a) == NewT2(a+1, show(a))

		return swap && bimap && pair
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestT2String(t *testing.T) {
	require.Equal(t, "(1, lnd)", NewT2(1, "lnd").String())
}
