package tuple

import (
	"github.com/lightningnetwork/fp"
	"github.com/lightningnetwork/fp/lens"
)

// Compile time checks that both pair lenses satisfy lens.Lens.
var (
	_ lens.Lens[T2[int, string], int]    = LensFirst[int, string]{}
	_ lens.Lens[T2[int, string], string] = LensSecond[int, string]{}
)

// LensFirst focuses on the first slot of a T2. It carries no state.
type LensFirst[A, B any] struct{}

// Get returns the first slot. A pair always has one, so the result is
// always Some.
func (LensFirst[A, B]) Get(t2 T2[A, B]) fp.Option[A] {
	return fp.Some(t2.first)
}

// Set returns a new pair with a in the first slot and a copy of the
// existing second slot.
func (LensFirst[A, B]) Set(a A, t2 T2[A, B]) T2[A, B] {
	return NewT2(a, fp.Clone(t2.second))
}

// LensSecond focuses on the second slot of a T2. It carries no state.
type LensSecond[A, B any] struct{}

// Get returns the second slot. A pair always has one, so the result is
// always Some.
func (LensSecond[A, B]) Get(t2 T2[A, B]) fp.Option[B] {
	return fp.Some(t2.second)
}

// Set returns a new pair with a copy of the existing first slot and b in
// the second slot.
func (LensSecond[A, B]) Set(b B, t2 T2[A, B]) T2[A, B] {
	return NewT2(fp.Clone(t2.first), b)
}
