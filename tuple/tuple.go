package tuple

import "github.com/lightningnetwork/fp"

// Duplicate builds a pair holding two independently owned copies of a.
// Reference types that do not implement fp.Copyable, such as a plain slice
// or map, are shared by both slots rather than duplicated.
//
// Duplicate : A -> (A, A).
func Duplicate[A any](a A) T2[A, A] {
	return NewT2(fp.Clone(a), a)
}

// Cons packs two standalone values into a pair.
//
// Cons : (A, B) -> (A, B).
func Cons[A, B any](a A, b B) T2[A, B] {
	return NewT2(a, b)
}

// Spread adapts a two argument function into one that takes its arguments
// pre-packed as a pair.
//
// Spread : ((A, B) -> C) -> ((A, B) -> C).
func Spread[A, B, C any](f func(A, B) C) func(T2[A, B]) C {
	return func(t2 T2[A, B]) C {
		return f(t2.Unpack())
	}
}

// Gather is the inverse of Spread.
func Gather[A, B, C any](f func(T2[A, B]) C) func(A, B) C {
	return func(a A, b B) C {
		return f(NewT2(a, b))
	}
}

// First projects the first slot of a pair.
func First[A, B any](t2 T2[A, B]) A {
	return t2.first
}

// Second projects the second slot of a pair.
func Second[A, B any](t2 T2[A, B]) B {
	return t2.second
}

// Swap exchanges the two slots.
func Swap[A, B any](t2 T2[A, B]) T2[B, A] {
	return NewT2(t2.second, t2.first)
}

// Pair runs two functions over the same argument and collects the results
// into a pair.
func Pair[A, B, C any](f func(A) B, g func(A) C) func(A) T2[B, C] {
	return func(a A) T2[B, C] {
		return NewT2(f(a), g(a))
	}
}

// MapFirst lifts f into a function that transforms only the first slot of
// a pair. The second slot is passed through as is.
//
// MapFirst : (A -> C) -> ((A, B) -> (C, B)).
func MapFirst[A, B, C any](f func(A) C) func(T2[A, B]) T2[C, B] {
	return func(t2 T2[A, B]) T2[C, B] {
		return NewT2(f(t2.first), t2.second)
	}
}

// MapSecond lifts f into a function that transforms only the second slot of
// a pair. The first slot is passed through as is.
//
// MapSecond : (B -> C) -> ((A, B) -> (A, C)).
func MapSecond[A, B, C any](f func(B) C) func(T2[A, B]) T2[A, C] {
	return func(t2 T2[A, B]) T2[A, C] {
		return NewT2(t2.first, f(t2.second))
	}
}

// Bimap transforms both slots at once.
func Bimap[A, B, C, D any](f func(A) C,
	g func(B) D) func(T2[A, B]) T2[C, D] {

	return func(t2 T2[A, B]) T2[C, D] {
		return NewT2(f(t2.first), g(t2.second))
	}
}
