// Package ring provides exact commutative-ring arithmetic for coefficient
// domains used by freemodule and subquo.
//
// The ring package provides:
//
//   - The Ring interface: +, −, ×, exact ÷, and exact zero/one/equality
//     tests over opaque Scalar values.
//   - Rationals() — the field ℚ backed by math/big.Rat.
//   - Integers() — the ring ℤ backed by math/big.Int.
//   - Mod(n) — the ring ℤ/nℤ backed by math/big.Int.
//
// All arithmetic is exact: no floating point, no tolerances. Scalars are
// immutable values; every operation allocates a fresh result and never
// mutates its operands.
//
// Division is the only fallible operation. Rings that are not fields report
// ErrInexactDivision when the quotient does not exist in the ring, and every
// ring reports ErrDivisionByZero on a zero divisor. Both are sentinel errors
// to be matched with errors.Is.
//
// Passing a Scalar produced by a different Ring into an operation is a
// programmer error and panics; user-triggered conditions never panic.
package ring
