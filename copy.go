package fp

// Copyable is implemented by types that can return a deep copy of
// themselves. Types that hold reference state (slices, maps, pointers)
// implement it so the combinators can hand out independently owned copies.
type Copyable[T any] interface {
	Copy() T
}

// Clone returns an independently owned copy of a. If a implements
// Copyable[A] its Copy method is used, otherwise a is copied by Go
// assignment, which is a full duplicate for value types.
func Clone[A any](a A) A {
	if c, ok := any(a).(Copyable[A]); ok {
		return c.Copy()
	}

	return a
}
