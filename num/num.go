/*
Package num defines the integer capability shared by all duration storage
types: a constraint covering the fixed-width signed and unsigned integers,
and the smallest and largest value each of them can represent.
*/
package num // import "github.com/fry/embedded-time/num"

import (
	"golang.org/x/exp/constraints"
)

// Integer is the set of types usable as a duration count.
type Integer interface {
	constraints.Signed | constraints.Unsigned
}

// MinValue returns the smallest value representable in T.
func MinValue[T Integer]() T {
	var zero T
	if ^zero > zero { // unsigned
		return zero
	}
	// Walk a set bit up to the sign position; the first negative value of
	// the sequence 1, 2, 4, ... is exactly the minimum.
	v := T(1)
	for v > 0 {
		v <<= 1
	}
	return v
}

// MaxValue returns the largest value representable in T.
func MaxValue[T Integer]() T {
	return ^MinValue[T]()
}
