package fn

// Comp is left to right function composition: Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden is the left and right identity of Comp.
func Iden[A any](a A) A {
	return a
}

// Curry turns a two argument function into one that takes the first
// argument and returns a function awaiting the second. Handy when a go
// style function has to be fed to a higher order function expecting a
// single argument.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry inverts Curry.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
