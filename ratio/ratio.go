/*
Package ratio implements exact rational numbers backed by 32-bit signed
integers. A Ratio describes the period of a duration unit, i.e. how many
seconds one count of that unit represents.
*/
package ratio // import "github.com/fry/embedded-time/ratio"

import (
	"fmt"
)

// Ratio is an immutable rational number. The denominator is always positive;
// the sign of the value lives in the numerator.
type Ratio struct {
	num, den int32
}

// New returns the ratio num/den with the sign normalized onto the numerator.
// The components are stored as given, without reduction to lowest terms.
// New panics if den is zero.
func New(num, den int32) Ratio {
	if den == 0 {
		panic("ratio: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Ratio{num: num, den: den}
}

// Num returns the numerator.
func (r Ratio) Num() int32 { return r.num }

// Denom returns the denominator. It is always positive.
func (r Ratio) Denom() int32 { return r.den }

// Mul returns the product r * s. Factors common to a numerator of one operand
// and the denominator of the other are cancelled before multiplying, so the
// result of e.g. (1/1000) * (1000000/1) is 1000/1, not 1000000000/1000. The
// cancellation keeps the intermediate products, and everything later scaled
// by the result, as small as the value allows.
func (r Ratio) Mul(s Ratio) Ratio {
	g1 := gcd(r.num, s.den)
	g2 := gcd(s.num, r.den)
	return Ratio{
		num: (r.num / g1) * (s.num / g2),
		den: (r.den / g2) * (s.den / g1),
	}
}

// Div returns the quotient r / s. Div panics if s is zero.
func (r Ratio) Div(s Ratio) Ratio {
	return r.Mul(s.Inv())
}

// Inv returns the reciprocal of r. Inv panics if r is zero.
func (r Ratio) Inv() Ratio {
	if r.num == 0 {
		panic("ratio: inverse of zero")
	}
	return New(r.den, r.num)
}

// Equal reports whether r and s represent the same value, regardless of
// whether either is stored in lowest terms: 2/2 equals 1/1.
func (r Ratio) Equal(s Ratio) bool {
	return int64(r.num)*int64(s.den) == int64(s.num)*int64(r.den)
}

// String returns the ratio as "num/den".
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// gcd returns the greatest common divisor of a and b as a positive value.
// b is never zero here: it is always one of the (positive) denominators.
func gcd(a, b int32) int32 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
