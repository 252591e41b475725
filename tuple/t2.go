// Package tuple provides the T2 pair type, combinators that build, take
// apart and transform pairs, and lenses focusing on either slot.
package tuple

import "fmt"

// T2 is an immutable 2-tuple. It is useful for carrying an ad hoc
// conjunction of two types as one value that can be passed to and returned
// from single argument functions.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 is the canonical constructor for a T2. It exists because the fields
// themselves are unexported.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{
		first:  a,
		second: b,
	}
}

// First returns the value in the first slot.
func (t2 T2[A, B]) First() A {
	return t2.first
}

// Second returns the value in the second slot.
func (t2 T2[A, B]) Second() B {
	return t2.second
}

// Unpack returns both slots as the multiple return values customary in Go.
func (t2 T2[A, B]) Unpack() (A, B) {
	return t2.first, t2.second
}

// String renders the pair as (first, second).
func (t2 T2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t2.first, t2.second)
}
