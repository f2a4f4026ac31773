/*
Package duration implements fixed-point time durations: an integer count
paired, at the type level, with the period one count represents.

Each unit is a distinct instantiation of the generic Duration type, so a count
of milliseconds cannot be mistaken for a count of seconds. Moving between
units goes through From or Into, which scale the count by the exact ratio of
the two periods using only the storage type's own integer arithmetic; no
floating point is involved. Converting to a coarser unit truncates toward
zero, the documented price of staying in integers. Arithmetic is unchecked:
counts that exceed the storage type wrap exactly as the storage type does.
*/
package duration // import "github.com/fry/embedded-time/duration"

import (
	"fmt"

	"github.com/fry/embedded-time/num"
	"github.com/fry/embedded-time/ratio"
)

// Unit ties a duration unit to its period: the number of seconds one count of
// the unit represents, as a ratio of 32-bit integers. Units are stateless tag
// types; Period must return the same ratio for every value of the unit.
type Unit interface {
	Period() ratio.Ratio
}

// The built-in units. Supplying another is a matter of declaring a tag type
// with a Period method.
type (
	Hours        struct{}
	Minutes      struct{}
	Seconds      struct{}
	Milliseconds struct{}
	Microseconds struct{}
	Nanoseconds  struct{}
)

func (Hours) Period() ratio.Ratio        { return ratio.New(3600, 1) }
func (Minutes) Period() ratio.Ratio      { return ratio.New(60, 1) }
func (Seconds) Period() ratio.Ratio      { return ratio.New(1, 1) }
func (Milliseconds) Period() ratio.Ratio { return ratio.New(1, 1_000) }
func (Microseconds) Period() ratio.Ratio { return ratio.New(1, 1_000_000) }
func (Nanoseconds) Period() ratio.Ratio  { return ratio.New(1, 1_000_000_000) }

// Duration is a span of time expressed as a whole number of unit-U counts
// stored in T. The zero value is zero counts. Values are immutable; every
// operation returns a new value. Negative counts are valid and act as signed
// offsets where the storage type is signed.
type Duration[U Unit, T num.Integer] struct {
	count T
}

// New returns a duration of count counts of unit U. No validation is
// performed; any representable count is accepted.
func New[U Unit, T num.Integer](count T) Duration[U, T] {
	return Duration[U, T]{count: count}
}

// Count returns the raw count.
func (d Duration[U, T]) Count() T { return d.count }

// Period returns the period of unit U. It is identical for every Duration of
// the same unit.
func (Duration[U, T]) Period() ratio.Ratio {
	var u U
	return u.Period()
}

// MinValue returns the smallest count the storage type can hold.
func (Duration[U, T]) MinValue() T { return num.MinValue[T]() }

// MaxValue returns the largest count the storage type can hold.
func (Duration[U, T]) MaxValue() T { return num.MaxValue[T]() }

// Add returns d + rhs. Both operands have the same unit by construction;
// adding across units requires an explicit conversion first.
func (d Duration[U, T]) Add(rhs Duration[U, T]) Duration[U, T] {
	return Duration[U, T]{count: d.count + rhs.count}
}

// Sub returns d - rhs.
func (d Duration[U, T]) Sub(rhs Duration[U, T]) Duration[U, T] {
	return Duration[U, T]{count: d.count - rhs.count}
}

// String returns the decimal digits of the raw count, with a leading minus
// sign for negative counts and no unit suffix.
func (d Duration[U, T]) String() string {
	return fmt.Sprintf("%d", d.count)
}

// From converts other into unit To:
//
//	From[Milliseconds](New[Seconds](1_000))   == New[Milliseconds](1_000_000)
//	From[Seconds](New[Milliseconds](1_234))   == New[Seconds](1)
//	From[Microseconds](New[Milliseconds](12)) == New[Microseconds](12_000)
//
// The count is multiplied by the exact quotient of the two periods.
func From[To, U Unit, T num.Integer](other Duration[U, T]) Duration[To, T] {
	var from U
	var to To
	s := scalar[T]{other.Count()}.mul(from.Period().Div(to.Period()))
	return New[To](s.v)
}

// Into converts d into unit To. It is the mirror image of From, dividing by
// the inverse quotient of the periods, and agrees with From for every input:
//
//	Into[Milliseconds](New[Seconds](1_000)) == New[Milliseconds](1_000_000)
//	Into[Seconds](New[Milliseconds](2_345)) == New[Seconds](2)
func Into[To, U Unit, T num.Integer](d Duration[U, T]) Duration[To, T] {
	var from U
	var to To
	s := scalar[T]{d.Count()}.div(to.Period().Div(from.Period()))
	return New[To](s.v)
}

// scalar applies a period ratio to a raw count using the storage type's own
// arithmetic. The multiply always happens before the divide: dividing first
// would discard sub-unit precision and can turn a nonzero count into a
// spurious zero. Precision is therefore lost only in the final division,
// which truncates toward zero.
type scalar[T num.Integer] struct {
	v T
}

func (s scalar[T]) mul(r ratio.Ratio) scalar[T] {
	return scalar[T]{s.v * T(r.Num()) / T(r.Denom())}
}

func (s scalar[T]) div(r ratio.Ratio) scalar[T] {
	return scalar[T]{s.v * T(r.Denom()) / T(r.Num())}
}
