package fp

import "golang.org/x/exp/constraints"

// Number is a type constraint for the real numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Unsigned is a type constraint for the unsigned integer types.
type Unsigned interface {
	constraints.Unsigned
}

// Add returns a + b using Go's native arithmetic.
func Add[N Number](a, b N) N {
	return a + b
}

// Sub returns a - b using Go's native arithmetic. For unsigned types the
// result wraps modulo 2^n when b > a, so Sub[uint8](1, 2) is 255.
func Sub[N Number](a, b N) N {
	return a - b
}

// SatSub returns a - b, clamped to zero when b > a.
func SatSub[N Unsigned](a, b N) N {
	if b > a {
		return 0
	}

	return a - b
}
