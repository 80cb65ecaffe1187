// SPDX-License-Identifier: MIT
// Package ring: the ring of integers ℤ over math/big.Int.

package ring

import (
	"fmt"
	"math/big"
)

// integerRing implements Ring for ℤ. Stateless; Integers returns a single
// shared instance.
type integerRing struct{}

// theIntegers is the process-wide ℤ instance.
var theIntegers Ring = integerRing{}

// Integers returns the ring ℤ of exact integers.
// Scalars are *big.Int values; Div fails with ErrInexactDivision unless the
// divisor divides the dividend exactly.
func Integers() Ring { return theIntegers }

// integer asserts that a belongs to ℤ. Mixing rings is a programmer error.
func integer(a Scalar) *big.Int {
	n, ok := a.(*big.Int)
	if !ok {
		panic(fmt.Sprintf("ring: scalar %v (%T) does not belong to ℤ", a, a))
	}

	return n
}

func (integerRing) Name() string { return "ℤ" }

func (integerRing) Zero() Scalar { return new(big.Int) }

func (integerRing) One() Scalar { return big.NewInt(1) }

func (integerRing) FromInt(n int64) Scalar { return big.NewInt(n) }

func (integerRing) Add(a, b Scalar) Scalar { return new(big.Int).Add(integer(a), integer(b)) }

func (integerRing) Neg(a Scalar) Scalar { return new(big.Int).Neg(integer(a)) }

func (integerRing) Sub(a, b Scalar) Scalar { return new(big.Int).Sub(integer(a), integer(b)) }

func (integerRing) Mul(a, b Scalar) Scalar { return new(big.Int).Mul(integer(a), integer(b)) }

// Div returns a/b when b divides a exactly.
// Fails with ErrDivisionByZero when b == 0 and ErrInexactDivision otherwise.
func (integerRing) Div(a, b Scalar) (Scalar, error) {
	bb := integer(b)
	if bb.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	quo, rem := new(big.Int).QuoRem(integer(a), bb, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s does not divide %s in ℤ",
			ErrInexactDivision, bb.String(), integer(a).String())
	}

	return quo, nil
}

func (integerRing) IsZero(a Scalar) bool { return integer(a).Sign() == 0 }

func (integerRing) IsOne(a Scalar) bool { return integer(a).Cmp(oneInt) == 0 }

func (integerRing) Eq(a, b Scalar) bool { return integer(a).Cmp(integer(b)) == 0 }

func (integerRing) Format(a Scalar) string { return integer(a).String() }

// oneInt is a shared read-only constant for IsOne comparisons.
var oneInt = big.NewInt(1)
