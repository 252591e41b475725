// Package lens defines the Lens capability: a get/set pair giving focused
// access to a part of a larger value, together with generic helpers that
// work for any implementation.
package lens

import "github.com/lightningnetwork/fp"

// Lens focuses on a Part inside a Whole.
//
// Get returns the focused part, or None when the whole has no such part
// (for example a lens into one variant of a sum type). Set returns a new
// whole with the part replaced and must leave its input untouched.
type Lens[Whole, Part any] interface {
	// Get extracts the focused part from the whole, if present.
	Get(whole Whole) fp.Option[Part]

	// Set returns a copy of whole with the focused part replaced by
	// part.
	Set(part Part, whole Whole) Whole
}

// Modify lifts f into a function over the whole that rewrites the focused
// part. Wholes without the part are returned unchanged.
func Modify[W, P any](l Lens[W, P], f func(P) P) func(W) W {
	return func(w W) W {
		return fp.ElimOption(
			l.Get(w),
			func() W { return w },
			func(p P) W { return l.Set(f(p), w) },
		)
	}
}

// Identity is the lens whose focus is the whole value itself.
type Identity[W any] struct{}

// Get always returns the whole.
func (Identity[W]) Get(whole W) fp.Option[W] {
	return fp.Some(whole)
}

// Set discards the old whole and returns the new one.
func (Identity[W]) Set(part W, _ W) W {
	return part
}

// composed chains two lenses, see Compose.
type composed[W, M, P any] struct {
	outer Lens[W, M]
	inner Lens[M, P]
}

// Compose builds a lens that focuses through outer and then inner. The
// part is absent if it is absent at either level, and setting through an
// absent middle leaves the whole unchanged.
func Compose[W, M, P any](outer Lens[W, M], inner Lens[M, P]) Lens[W, P] {
	return composed[W, M, P]{outer: outer, inner: inner}
}

// Get implements Lens.
func (c composed[W, M, P]) Get(whole W) fp.Option[P] {
	return fp.FlatMapOption(c.inner.Get)(c.outer.Get(whole))
}

// Set implements Lens.
func (c composed[W, M, P]) Set(part P, whole W) W {
	return Modify(c.outer, func(m M) M {
		return c.inner.Set(part, m)
	})(whole)
}
