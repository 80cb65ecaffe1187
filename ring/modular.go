// SPDX-License-Identifier: MIT
// Package ring: the residue ring ℤ/nℤ over math/big.Int.
//
// Scalars are *big.Int values normalized into [0, n). Division multiplies by
// the modular inverse and therefore only succeeds when the divisor is a unit
// modulo n; for prime n the ring is a field and every nonzero Div succeeds.

package ring

import (
	"fmt"
	"math/big"
)

// modRing implements Ring for ℤ/nℤ. The modulus is fixed at construction;
// two modRing instances with equal moduli are interchangeable but distinct.
type modRing struct {
	n *big.Int // modulus, ≥ 2; never mutated after construction
}

// Mod returns the residue ring ℤ/nℤ.
// Fails with ErrBadModulus when n < 2.
func Mod(n int64) (Ring, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadModulus, n)
	}

	return &modRing{n: big.NewInt(n)}, nil
}

// residue asserts that a belongs to this ring. Mixing rings is a programmer
// error; values outside [0, n) are accepted and renormalized on use.
func (r *modRing) residue(a Scalar) *big.Int {
	v, ok := a.(*big.Int)
	if !ok {
		panic(fmt.Sprintf("ring: scalar %v (%T) does not belong to %s", a, a, r.Name()))
	}

	return v
}

// norm maps v into the canonical range [0, n).
func (r *modRing) norm(v *big.Int) *big.Int { return v.Mod(v, r.n) }

func (r *modRing) Name() string { return "ℤ/" + r.n.String() + "ℤ" }

func (r *modRing) Zero() Scalar { return new(big.Int) }

func (r *modRing) One() Scalar { return big.NewInt(1) }

func (r *modRing) FromInt(n int64) Scalar { return r.norm(big.NewInt(n)) }

func (r *modRing) Add(a, b Scalar) Scalar {
	return r.norm(new(big.Int).Add(r.residue(a), r.residue(b)))
}

func (r *modRing) Neg(a Scalar) Scalar {
	return r.norm(new(big.Int).Neg(r.residue(a)))
}

func (r *modRing) Sub(a, b Scalar) Scalar {
	return r.norm(new(big.Int).Sub(r.residue(a), r.residue(b)))
}

func (r *modRing) Mul(a, b Scalar) Scalar {
	return r.norm(new(big.Int).Mul(r.residue(a), r.residue(b)))
}

// Div returns a·b⁻¹ mod n when b is a unit modulo n.
// Fails with ErrDivisionByZero when b ≡ 0 and ErrInexactDivision when b has
// no inverse (gcd(b, n) > 1).
func (r *modRing) Div(a, b Scalar) (Scalar, error) {
	bb := new(big.Int).Mod(r.residue(b), r.n)
	if bb.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	inv := new(big.Int).ModInverse(bb, r.n)
	if inv == nil {
		return nil, fmt.Errorf("%w: %s is not a unit in %s",
			ErrInexactDivision, bb.String(), r.Name())
	}

	return r.norm(inv.Mul(inv, new(big.Int).Mod(r.residue(a), r.n))), nil
}

func (r *modRing) IsZero(a Scalar) bool {
	return new(big.Int).Mod(r.residue(a), r.n).Sign() == 0
}

func (r *modRing) IsOne(a Scalar) bool {
	return new(big.Int).Mod(r.residue(a), r.n).Cmp(oneInt) == 0
}

func (r *modRing) Eq(a, b Scalar) bool {
	av := new(big.Int).Mod(r.residue(a), r.n)
	bv := new(big.Int).Mod(r.residue(b), r.n)

	return av.Cmp(bv) == 0
}

func (r *modRing) Format(a Scalar) string {
	return new(big.Int).Mod(r.residue(a), r.n).String()
}
