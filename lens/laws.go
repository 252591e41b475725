package lens

import (
	"errors"
	"fmt"

	"github.com/lightningnetwork/fp"
)

var (
	// ErrGetSet is returned when setting back what was just read changes
	// the whole.
	ErrGetSet = errors.New("lens violates get-set law")

	// ErrSetGet is returned when reading after a set does not yield the
	// part that was set.
	ErrSetGet = errors.New("lens violates set-get law")

	// ErrSetSet is returned when setting the same part twice differs
	// from setting it once.
	ErrSetSet = errors.New("lens violates set-set law")
)

// CheckLaws verifies the three lens laws for l at the given whole and part:
//
//	GetSet: Set(Get(w), w) == w, whenever Get(w) is present
//	SetGet: Get(Set(p, w)) == Some(p)
//	SetSet: Set(p, Set(p, w)) == Set(p, w)
//
// All violations found are joined into the returned error.
func CheckLaws[W, P comparable](l Lens[W, P], w W, p P) error {
	var errs []error

	l.Get(w).WhenSome(func(got P) {
		if back := l.Set(got, w); back != w {
			errs = append(errs, fmt.Errorf("%w: set(get(w), w) "+
				"= %v, want %v", ErrGetSet, back, w))
		}
	})

	set := l.Set(p, w)
	if got := l.Get(set); got != fp.Some(p) {
		errs = append(errs, fmt.Errorf("%w: get(set(%v, w)) = %s",
			ErrSetGet, p, showOption(got)))
	}

	if twice := l.Set(p, set); twice != set {
		errs = append(errs, fmt.Errorf("%w: set twice = %v, once = %v",
			ErrSetSet, twice, set))
	}

	if len(errs) != 0 {
		log.Debugf("Lens %T broke %d law(s) for whole: %v",
			l, len(errs), spewClosure(w))
	}

	return errors.Join(errs...)
}

// showOption renders an Option for error messages.
func showOption[A any](o fp.Option[A]) string {
	return fp.ElimOption(
		o,
		func() string { return "None" },
		func(a A) string { return fmt.Sprintf("Some(%v)", a) },
	)
}
