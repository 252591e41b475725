package fn

import "github.com/lightningnetwork/fp"

// Always creates a function that returns a fresh copy of a every time it is
// called. The value is copied once on capture, so mutating the original
// after the call to Always is never observed. This only holds for types
// implementing fp.Copyable: a plain slice, map or pointer is shared between
// the caller and every result.
//
// Always : A -> (() -> A).
func Always[A any](a A) func() A {
	captured := fp.Clone(a)

	return func() A {
		return fp.Clone(captured)
	}
}

// Const is the one argument variant of Always: the returned function
// ignores its argument.
//
// Const : A -> (B -> A).
func Const[A, B any](a A) func(B) A {
	captured := fp.Clone(a)

	return func(_ B) A {
		return fp.Clone(captured)
	}
}

// Flip reverses the order of the arguments of a two argument function.
//
// Flip : ((A, B) -> C) -> ((B, A) -> C).
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// FirstArg widens a one argument function into a two argument one that
// discards its second argument.
//
// FirstArg : (A -> C) -> ((A, B) -> C).
func FirstArg[A, B, C any](f func(A) C) func(A, B) C {
	return func(a A, _ B) C {
		return f(a)
	}
}

// SecondArg widens a one argument function into a two argument one that
// discards its first argument.
//
// SecondArg : (B -> C) -> ((A, B) -> C).
func SecondArg[A, B, C any](f func(B) C) func(A, B) C {
	return func(_ A, b B) C {
		return f(b)
	}
}

// ApplyFirst fixes the first argument of f to a. Every call of the returned
// function receives its own copy of a, unless a is a reference type that
// does not implement fp.Copyable, in which case all calls share it.
//
// ApplyFirst : (A, (A, B) -> C) -> (B -> C).
func ApplyFirst[A, B, C any](a A, f func(A, B) C) func(B) C {
	captured := fp.Clone(a)

	return func(b B) C {
		return f(fp.Clone(captured), b)
	}
}

// ApplySecond fixes the second argument of f to b. Every call of the
// returned function receives its own copy of b. As with ApplyFirst, a
// reference type that does not implement fp.Copyable is shared.
//
// ApplySecond : (B, (A, B) -> C) -> (A -> C).
func ApplySecond[A, B, C any](b B, f func(A, B) C) func(A) C {
	captured := fp.Clone(b)

	return func(a A) C {
		return f(a, fp.Clone(captured))
	}
}
