// SPDX-License-Identifier: MIT
// Package ring: the field of rational numbers ℚ over math/big.Rat.

package ring

import (
	"fmt"
	"math/big"
)

// rationalRing implements Ring for ℚ. It is stateless; Rationals returns a
// single shared instance so ring identity comparisons are cheap.
type rationalRing struct{}

// theRationals is the process-wide ℚ instance.
var theRationals Ring = rationalRing{}

// Rationals returns the field ℚ of exact rational numbers.
// Scalars are *big.Rat values and Div succeeds for every nonzero divisor.
func Rationals() Ring { return theRationals }

// Frac returns num/den as a Scalar of Rationals().
// Fails with ErrDivisionByZero when den == 0.
func Frac(num, den int64) (Scalar, error) {
	if den == 0 {
		return nil, ErrDivisionByZero
	}

	return big.NewRat(num, den), nil
}

// rat asserts that a belongs to ℚ. Mixing rings is a programmer error.
func rat(a Scalar) *big.Rat {
	q, ok := a.(*big.Rat)
	if !ok {
		panic(fmt.Sprintf("ring: scalar %v (%T) does not belong to ℚ", a, a))
	}

	return q
}

func (rationalRing) Name() string { return "ℚ" }

func (rationalRing) Zero() Scalar { return new(big.Rat) }

func (rationalRing) One() Scalar { return big.NewRat(1, 1) }

func (rationalRing) FromInt(n int64) Scalar { return big.NewRat(n, 1) }

func (rationalRing) Add(a, b Scalar) Scalar { return new(big.Rat).Add(rat(a), rat(b)) }

func (rationalRing) Neg(a Scalar) Scalar { return new(big.Rat).Neg(rat(a)) }

func (rationalRing) Sub(a, b Scalar) Scalar { return new(big.Rat).Sub(rat(a), rat(b)) }

func (rationalRing) Mul(a, b Scalar) Scalar { return new(big.Rat).Mul(rat(a), rat(b)) }

// Div returns a/b. ℚ is a field, so the only failure mode is b == 0.
func (rationalRing) Div(a, b Scalar) (Scalar, error) {
	bb := rat(b)
	if bb.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(rat(a), bb), nil
}

func (rationalRing) IsZero(a Scalar) bool { return rat(a).Sign() == 0 }

func (rationalRing) IsOne(a Scalar) bool { return rat(a).Cmp(oneRat) == 0 }

func (rationalRing) Eq(a, b Scalar) bool { return rat(a).Cmp(rat(b)) == 0 }

// Format renders "3" for integral values and "num/den" otherwise.
func (rationalRing) Format(a Scalar) string { return rat(a).RatString() }

// oneRat is a shared read-only constant for IsOne comparisons.
var oneRat = big.NewRat(1, 1)
