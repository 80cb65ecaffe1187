// SPDX-License-Identifier: MIT
// Package ring: Scalar, the Ring interface, and the package sentinel errors.
// All implementations in this package satisfy Ring with value-semantics
// scalars: operations allocate fresh results and never mutate operands.

package ring

import "errors"

// Sentinel errors returned by ring operations. Match with errors.Is.
var (
	// ErrDivisionByZero indicates a Div call with a zero divisor.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrInexactDivision indicates that the exact quotient of the two
	// operands does not exist in the ring (e.g. 3/2 in ℤ, or dividing by a
	// non-unit in ℤ/nℤ).
	ErrInexactDivision = errors.New("ring: inexact division")

	// ErrBadModulus indicates that Mod was called with a modulus < 2.
	ErrBadModulus = errors.New("ring: modulus must be at least 2")
)

// Scalar is an opaque exact ring element. A Scalar is owned by the Ring that
// produced it and must only be fed back into that same Ring; mixing scalars
// across rings is a programmer error and panics.
type Scalar interface{}

// Ring is an exact commutative ring with identity.
//
// Contract for all methods taking Scalars:
//   - operands are never mutated; results are freshly allocated;
//   - a Scalar from a different Ring panics (programmer error);
//   - only Div can fail on valid inputs, and only with the sentinel errors
//     ErrDivisionByZero and ErrInexactDivision (possibly wrapped).
type Ring interface {
	// Name returns a short human-readable ring name ("ℚ", "ℤ", "ℤ/7ℤ").
	Name() string

	// Zero returns the additive identity.
	Zero() Scalar

	// One returns the multiplicative identity.
	One() Scalar

	// FromInt returns the canonical image of n in the ring.
	FromInt(n int64) Scalar

	// Add returns a + b.
	Add(a, b Scalar) Scalar

	// Neg returns −a.
	Neg(a Scalar) Scalar

	// Sub returns a − b.
	Sub(a, b Scalar) Scalar

	// Mul returns a × b.
	Mul(a, b Scalar) Scalar

	// Div returns the unique c with a = b × c, when such c exists in the
	// ring. It fails with ErrDivisionByZero when b is zero and with
	// ErrInexactDivision when no exact quotient exists.
	Div(a, b Scalar) (Scalar, error)

	// IsZero reports whether a equals the additive identity.
	IsZero(a Scalar) bool

	// IsOne reports whether a equals the multiplicative identity.
	IsOne(a Scalar) bool

	// Eq reports exact equality of a and b.
	Eq(a, b Scalar) bool

	// Format renders a deterministically ("3", "-1/2").
	Format(a Scalar) string
}
