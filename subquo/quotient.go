// SPDX-License-Identifier: MIT
// Package subquo: QuotientModuleWithBasis — the quotient of a free module
// by a SubmoduleWithBasis, with a cokernel basis indexing the quotient.
//
// Elements of the quotient are represented directly in the free module
// spanned by the cokernel indices, never by wrapping ambient elements.
// Like submodules, quotients are interned: constructing the quotient of the
// same submodule with the same cokernel twice returns the identical object.

package subquo

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/submod/freemodule"
)

// Quotient interning registry.
var (
	internQuoMu sync.Mutex
	internQuo   = make(map[string]*QuotientModuleWithBasis)
)

// QuotientModuleWithBasis is the quotient of a free module with basis by a
// submodule with an echelon basis. Its own basis index set is the cokernel:
// the ambient indices that are not pivots of the submodule. Immutable after
// construction.
type QuotientModuleWithBasis struct {
	sub     *SubmoduleWithBasis
	ambient *freemodule.Module
	space   *freemodule.Module // free module over the cokernel indices
	cok     []string
	cokSet  map[string]bool
}

// NewQuotient constructs the quotient of the submodule's ambient module by
// the submodule, with the cokernel basis derived from the submodule's
// pivots (CokernelBasisIndices).
//
// Errors:
//   - ErrNilSubmodule – sub is nil.
//   - ErrInfiniteRank – the submodule family is infinite or the ambient
//     module has an unbounded basis.
func NewQuotient(sub *SubmoduleWithBasis) (*QuotientModuleWithBasis, error) {
	if sub == nil {
		return nil, ErrNilSubmodule
	}
	cok, err := sub.CokernelBasisIndices()
	if err != nil {
		return nil, err
	}

	return newQuotient(sub, cok)
}

// NewQuotientWithCokernel constructs the quotient with a caller-supplied
// cokernel basis. The indices must be ambient basis indices distinct from
// the submodule's pivots; whether they fully cover the complement is only
// validated lazily, by the first Retract that meets an uncovered index
// (IncompleteComplementError).
//
// Errors:
//   - ErrNilSubmodule    – sub is nil.
//   - ErrInfiniteRank    – the submodule family is infinite.
//   - ErrBadCokernel     – empty, duplicate, or unknown ambient index.
//   - ErrCokernelOverlap – an index is a pivot of the submodule.
func NewQuotientWithCokernel(sub *SubmoduleWithBasis, cokernel []string) (*QuotientModuleWithBasis, error) {
	if sub == nil {
		return nil, ErrNilSubmodule
	}
	if sub.slv == nil {
		return nil, fmt.Errorf("%w: family is not finite", ErrInfiniteRank)
	}

	pivots := sub.slv.pivots()
	seen := make(map[string]bool, len(cokernel))
	var ix string
	for _, ix = range cokernel {
		if ix == "" {
			return nil, fmt.Errorf("%w: empty index", ErrBadCokernel)
		}
		if !sub.ambient.HasIndex(ix) {
			return nil, fmt.Errorf("%w: %q is not an ambient index", ErrBadCokernel, ix)
		}
		if seen[ix] {
			return nil, fmt.Errorf("%w: duplicate index %q", ErrBadCokernel, ix)
		}
		seen[ix] = true
		if _, isPivot := pivots[ix]; isPivot {
			return nil, fmt.Errorf("%w: %q", ErrCokernelOverlap, ix)
		}
	}

	return newQuotient(sub, cokernel)
}

// newQuotient interns and assembles the quotient object.
func newQuotient(sub *SubmoduleWithBasis, cok []string) (*QuotientModuleWithBasis, error) {
	key := quotientFingerprint(sub, cok)

	internQuoMu.Lock()
	defer internQuoMu.Unlock()
	if existing, ok := internQuo[key]; ok {
		return existing, nil
	}

	space, err := freemodule.New(sub.ambient.Ring(), cok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCokernel, err)
	}
	cokSet := make(map[string]bool, len(cok))
	own := make([]string, len(cok))
	copy(own, cok)
	for _, ix := range cok {
		cokSet[ix] = true
	}

	q := &QuotientModuleWithBasis{
		sub:     sub,
		ambient: sub.ambient,
		space:   space,
		cok:     own,
		cokSet:  cokSet,
	}
	internQuo[key] = q

	return q, nil
}

// quotientFingerprint canonically encodes (submodule identity, cokernel).
// Submodules are interned, so their pointer identity is a stable key.
func quotientFingerprint(sub *SubmoduleWithBasis, cok []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "s%p|c:", sub)
	for _, ix := range cok {
		b.WriteString(strconv.Quote(ix))
		b.WriteByte(',')
	}

	return b.String()
}

// Ambient returns the ambient free module. Identity-stable: the same
// object across calls.
func (q *QuotientModuleWithBasis) Ambient() *freemodule.Module { return q.ambient }

// Submodule returns the submodule the quotient divides by.
func (q *QuotientModuleWithBasis) Submodule() *SubmoduleWithBasis { return q.sub }

// Space returns the quotient's own free module, generated by the cokernel
// indices. Quotient elements are elements of this module.
func (q *QuotientModuleWithBasis) Space() *freemodule.Module { return q.space }

// CokernelIndices returns a copy of the quotient's basis index set, in
// ambient basis order.
func (q *QuotientModuleWithBasis) CokernelIndices() []string {
	out := make([]string, len(q.cok))
	copy(out, q.cok)

	return out
}

// String renders the quotient by its basis index set.
func (q *QuotientModuleWithBasis) String() string {
	return fmt.Sprintf("quotient of %s by %s", q.ambient, q.sub)
}

// Lift maps a quotient element to the ambient module by sending each
// cokernel index to the ambient basis element itself — the complement
// basis element, not a pivot-transformed image.
//
// Errors:
//   - ErrNilSubmodule    – q is nil.
//   - ErrAmbientMismatch – x does not belong to Space().
func (q *QuotientModuleWithBasis) Lift(x freemodule.Element) (freemodule.Element, error) {
	if q == nil {
		return freemodule.Element{}, ErrNilSubmodule
	}
	if x.Module() != q.space {
		return freemodule.Element{}, fmt.Errorf("%w: element of %s is not a quotient element",
			ErrAmbientMismatch, x.Module())
	}

	return q.ambient.NewElement(x.Coefficients())
}

// LiftMorphism exposes Lift as an explicit morphism Space() → Ambient().
func (q *QuotientModuleWithBasis) LiftMorphism() *freemodule.Morphism {
	m, _ := freemodule.NewMorphism(q.space, q.ambient, q.Lift)

	return m
}

// Retract maps an ambient element to its class in the quotient: the
// submodule part is eliminated and the pivot-free remainder is read off on
// the cokernel indices. Unlike the submodule's Retract, this is total —
// it succeeds for every ambient element of a well-formed quotient.
//
// Errors:
//   - ErrNilSubmodule              – q is nil.
//   - ErrAmbientMismatch           – v does not belong to the ambient.
//   - *IncompleteComplementError   – the supplied cokernel does not cover
//     the complement (caller contract violation, matches
//     ErrIncompleteComplement).
//   - ring division errors         – non-unitriangular pivots that do not
//     divide over a non-field ring.
func (q *QuotientModuleWithBasis) Retract(v freemodule.Element) (freemodule.Element, error) {
	if q == nil {
		return freemodule.Element{}, ErrNilSubmodule
	}
	coeffs, err := q.sub.ProjectCokernel(v, q.cokSet)
	if err != nil {
		return freemodule.Element{}, err
	}

	return q.space.NewElement(coeffs)
}

// RetractMorphism exposes Retract as an explicit morphism
// Ambient() → Space().
func (q *QuotientModuleWithBasis) RetractMorphism() *freemodule.Morphism {
	m, _ := freemodule.NewMorphism(q.ambient, q.space, q.Retract)

	return m
}
