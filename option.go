package fp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Option is a value that may or may not be present. Lenses use it to report
// whether their focus exists inside a given whole.
type Option[A any] struct {
	isSome bool
	some   A
}

// Some wraps a present value.
//
// Some : A -> Option[A].
func Some[A any](a A) Option[A] {
	return Option[A]{
		isSome: true,
		some:   a,
	}
}

// None builds the empty Option.
//
// None : Option[A].
func None[A any]() Option[A] {
	return Option[A]{}
}

// ElimOption consumes an Option by supplying one continuation for each case.
//
// ElimOption : (Option[A], () -> B, A -> B) -> B.
func ElimOption[A, B any](o Option[A], b func() B, f func(A) B) B {
	if !o.isSome {
		return b()
	}

	return f(o.some)
}

// IsSome reports whether the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone reports whether the Option is empty.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// UnwrapOr returns the held value, or the given default when empty.
//
// UnwrapOr : (Option[A], A) -> A.
func (o Option[A]) UnwrapOr(a A) A {
	if !o.isSome {
		return a
	}

	return o.some
}

// UnwrapOrFunc returns the held value, or evaluates f when empty.
func (o Option[A]) UnwrapOrFunc(f func() A) A {
	return ElimOption(o, f, func(a A) A { return a })
}

// UnwrapOrFail returns the held value within a test, failing the test if
// the Option is empty.
func (o Option[A]) UnwrapOrFail(t *testing.T) A {
	t.Helper()

	require.True(t, o.isSome, "Option[%T] was None()", o.some)

	return o.some
}

// UnsafeFromSome returns the held value and panics if there is none. Only
// use it where presence is guaranteed, such as the tuple lenses.
func (o Option[A]) UnsafeFromSome() A {
	if !o.isSome {
		panic("Option was None()")
	}

	return o.some
}

// WhenSome runs f with the held value, if any.
func (o Option[A]) WhenSome(f func(A)) {
	if o.isSome {
		f(o.some)
	}
}

// Alt returns o when it is full and o2 otherwise.
//
// Alt : Option[A] -> Option[A] -> Option[A].
func (o Option[A]) Alt(o2 Option[A]) Option[A] {
	if o.isSome {
		return o
	}

	return o2
}

// MapOption lifts a pure function A -> B into the Option context.
//
// MapOption : (A -> B) -> Option[A] -> Option[B].
func MapOption[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if !o.isSome {
			return None[B]()
		}

		return Some(f(o.some))
	}
}

// FlatMapOption lifts a function A -> Option[B] so that it accepts an
// Option[A].
//
// FlatMapOption : (A -> Option[B]) -> Option[A] -> Option[B].
func FlatMapOption[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if !o.isSome {
			return None[B]()
		}

		return f(o.some)
	}
}
