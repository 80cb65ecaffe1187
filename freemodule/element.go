// SPDX-License-Identifier: MIT
// Package freemodule: Element — an immutable formal linear combination.
//
// Elements store nonzero coefficients only (normalized form). All methods
// are pure: operands are never mutated and results are freshly allocated.
// Mixed-module arithmetic coerces through the codomain module's embedding
// registry; without a registered embedding it fails with ErrModuleMismatch.

package freemodule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/submod/ring"
)

// Element is a formal linear combination of basis elements of its Module.
// The zero value is invalid; Elements are created via Module methods.
type Element struct {
	module *Module
	coeff  map[string]ring.Scalar // nonzero coefficients only; never mutated
}

// Module returns the module the element belongs to (nil for the invalid
// zero value).
func (e Element) Module() *Module { return e.module }

// Coeff returns the coefficient at ix; absent indices yield the ring zero.
func (e Element) Coeff(ix string) ring.Scalar {
	if c, ok := e.coeff[ix]; ok {
		return c
	}

	return e.module.ring.Zero()
}

// Len returns the number of nonzero coefficients.
func (e Element) Len() int { return len(e.coeff) }

// IsZero reports whether the element is the zero vector.
func (e Element) IsZero() bool { return len(e.coeff) == 0 }

// Support returns the indices carrying nonzero coefficients, sorted by
// basis order on finite modules and lexicographically otherwise.
func (e Element) Support() []string {
	out := make([]string, 0, len(e.coeff))
	for ix := range e.coeff {
		out = append(out, ix)
	}
	if e.module != nil && e.module.Finite() {
		sort.Slice(out, func(i, j int) bool {
			return e.module.rank[out[i]] < e.module.rank[out[j]]
		})
	} else {
		sort.Strings(out)
	}

	return out
}

// Coefficients returns a copy of the nonzero coefficient mapping.
func (e Element) Coefficients() map[string]ring.Scalar {
	out := make(map[string]ring.Scalar, len(e.coeff))
	for ix, c := range e.coeff {
		out[ix] = c
	}

	return out
}

// coercePair brings a and b into a common module: either they already share
// one, or exactly one of the two modules has a registered embedding from the
// other. Returns the aligned pair (both bound to the common module).
func coercePair(a, b Element) (Element, Element, error) {
	if a.module == nil || b.module == nil {
		return Element{}, Element{}, ErrNilModule
	}
	if a.module == b.module {
		return a, b, nil
	}
	// b embeds into a's module?
	if emb, ok := a.module.embeddingFrom(b.module); ok {
		lifted, err := emb.Apply(b)
		if err != nil {
			return Element{}, Element{}, err
		}

		return a, lifted, nil
	}
	// a embeds into b's module?
	if emb, ok := b.module.embeddingFrom(a.module); ok {
		lifted, err := emb.Apply(a)
		if err != nil {
			return Element{}, Element{}, err
		}

		return lifted, b, nil
	}

	return Element{}, Element{}, fmt.Errorf("%w: %s vs %s",
		ErrModuleMismatch, a.module, b.module)
}

// Add returns e + o, coercing across modules when an embedding is
// registered.
//
// Errors:
//   - ErrNilModule     – either operand is the invalid zero Element.
//   - ErrModuleMismatch – different modules with no registered embedding.
func (e Element) Add(o Element) (Element, error) {
	x, y, err := coercePair(e, o)
	if err != nil {
		return Element{}, err
	}
	r := x.module.ring
	sum := make(map[string]ring.Scalar, len(x.coeff)+len(y.coeff))
	for ix, c := range x.coeff {
		sum[ix] = c
	}
	for ix, c := range y.coeff {
		if prev, ok := sum[ix]; ok {
			next := r.Add(prev, c)
			if r.IsZero(next) {
				delete(sum, ix) // keep normalized form
			} else {
				sum[ix] = next
			}
		} else {
			sum[ix] = c
		}
	}
	if len(sum) == 0 {
		return x.module.Zero(), nil
	}

	return Element{module: x.module, coeff: sum}, nil
}

// Sub returns e − o, with the same coercion rules as Add.
func (e Element) Sub(o Element) (Element, error) {
	x, y, err := coercePair(e, o)
	if err != nil {
		return Element{}, err
	}

	return x.Add(y.Neg())
}

// Neg returns −e.
func (e Element) Neg() Element {
	if e.IsZero() {
		return e
	}
	r := e.module.ring
	out := make(map[string]ring.Scalar, len(e.coeff))
	for ix, c := range e.coeff {
		out[ix] = r.Neg(c)
	}

	return Element{module: e.module, coeff: out}
}

// ScalarMul returns c·e.
func (e Element) ScalarMul(c ring.Scalar) Element {
	r := e.module.ring
	if r.IsZero(c) || e.IsZero() {
		return e.module.Zero()
	}
	out := make(map[string]ring.Scalar, len(e.coeff))
	var prod ring.Scalar
	for ix, v := range e.coeff {
		prod = r.Mul(c, v)
		if r.IsZero(prod) {
			continue // zero divisors can cancel a term
		}
		out[ix] = prod
	}
	if len(out) == 0 {
		return e.module.Zero()
	}

	return Element{module: e.module, coeff: out}
}

// Equal reports exact coefficient-wise equality, coercing across modules
// when an embedding is registered.
func (e Element) Equal(o Element) (bool, error) {
	x, y, err := coercePair(e, o)
	if err != nil {
		return false, err
	}
	if len(x.coeff) != len(y.coeff) {
		return false, nil
	}
	r := x.module.ring
	for ix, c := range x.coeff {
		oc, ok := y.coeff[ix]
		if !ok || !r.Eq(c, oc) {
			return false, nil
		}
	}

	return true, nil
}

// String renders the element deterministically in support order, e.g.
// "x0 - x1", "3*x2", "1/2*x0 + x1", "0".
func (e Element) String() string {
	if e.module == nil {
		return "<invalid element>"
	}
	if e.IsZero() {
		return "0"
	}
	r := e.module.ring
	var b strings.Builder
	var term, c string
	for pos, ix := range e.Support() {
		c = r.Format(e.coeff[ix])
		switch c {
		case "1":
			term = ix
		case "-1":
			term = "-" + ix
		default:
			term = c + "*" + ix
		}
		if pos == 0 {
			b.WriteString(term)

			continue
		}
		if strings.HasPrefix(term, "-") {
			b.WriteString(" - ")
			b.WriteString(term[1:])
		} else {
			b.WriteString(" + ")
			b.WriteString(term)
		}
	}

	return b.String()
}
