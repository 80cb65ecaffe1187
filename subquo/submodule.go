// SPDX-License-Identifier: MIT
// Package subquo: SubmoduleWithBasis — a submodule of a free module spanned
// by a basis in echelon form, with the derived Lift/Retract/Reduce maps.
//
// Construction is normalized: structurally equal inputs (same ambient
// identity, same family data and order, same options) return the identical
// *SubmoduleWithBasis, interned in a process-wide registry. Derived state
// beyond the pivot tables (cokernel indices, morphism wrappers) is computed
// lazily, at most once, behind sync.Once guards.

package subquo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/submod/freemodule"
	"github.com/katalvlaran/submod/ring"
)

// Container is anything ambient elements can be members of: the ambient
// module itself (trivially) or a submodule of it. Both *freemodule.Module
// and *SubmoduleWithBasis satisfy it.
type Container interface {
	// Ambient returns the enclosing free module.
	Ambient() *freemodule.Module

	// Contains reports membership of an ambient element.
	Contains(v freemodule.Element) (bool, error)
}

// SubmoduleWithBasis is a submodule of a free module with basis, spanned by
// an echelon-form family. Immutable after construction.
type SubmoduleWithBasis struct {
	ambient *freemodule.Module
	family  Family
	order   *SupportOrder
	opts    Options

	space *freemodule.Module // free module over the generator keys
	slv   *solver            // pivot tables; nil for infinite families

	cokOnce sync.Once // guards cok/cokErr
	cok     []string
	cokErr  error

	liftOnce sync.Once // guards liftM
	liftM    *freemodule.Morphism

	redOnce sync.Once // guards redM
	redM    *freemodule.Morphism
}

// Submodule interning registry (construction normalization).
var (
	internMu  sync.Mutex
	internSub = make(map[string]*SubmoduleWithBasis)
)

// NewSubmodule wraps basis as an echelon-form basis of a submodule of
// ambient, under the given support order.
//
// The family's vectors must all belong to ambient, be nonzero, have their
// support covered by order, and pivot at pairwise distinct indices (the
// pivot of a generator is the lowest-ranked index of its support). The
// echelon property beyond the pivot is trusted, not verified; see
// Unitriangular and WithPivotCheck for the division behavior.
//
// Calling NewSubmodule twice with structurally equal inputs returns the
// identical object. Unless WithoutCoercion is given, the lift map is
// registered as a structural embedding into ambient, so arithmetic mixing
// submodule and ambient elements resolves automatically.
//
// Errors:
//   - ErrNilAmbient, ErrNilFamily, ErrNilOrder – nil inputs.
//   - ErrBadFamily, ErrZeroGenerator, ErrSupportNotCovered, ErrPivotClash,
//     ErrAmbientMismatch – malformed basis data.
//   - ErrPivotNotUnit – failed WithPivotCheck verification.
func NewSubmodule(ambient *freemodule.Module, basis Family, order *SupportOrder, opts ...Option) (*SubmoduleWithBasis, error) {
	if ambient == nil {
		return nil, ErrNilAmbient
	}
	if basis == nil {
		return nil, ErrNilFamily
	}
	if order == nil {
		return nil, ErrNilOrder
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Infinite families are accepted structurally, but cannot be interned
	// or solved against: only Lift works, everything else reports
	// ErrInfiniteRank.
	if !basis.Finite() {
		space, err := freemodule.NewUnbounded(ambient.Ring())
		if err != nil {
			return nil, err
		}

		return &SubmoduleWithBasis{
			ambient: ambient,
			family:  basis,
			order:   order,
			opts:    cfg,
			space:   space,
		}, nil
	}

	key := submoduleFingerprint(ambient, basis, order, cfg)

	internMu.Lock()
	defer internMu.Unlock()
	if existing, ok := internSub[key]; ok {
		return existing, nil
	}

	slv, err := newSolver(ambient, basis, order, cfg)
	if err != nil {
		return nil, err
	}
	space, err := freemodule.New(ambient.Ring(), basis.Keys())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFamily, err)
	}

	sub := &SubmoduleWithBasis{
		ambient: ambient,
		family:  basis,
		order:   order,
		opts:    cfg,
		space:   space,
		slv:     slv,
	}
	if !cfg.NoCoercion {
		if err = ambient.RegisterEmbedding(sub.LiftMorphism()); err != nil {
			return nil, err
		}
	}
	internSub[key] = sub

	return sub, nil
}

// submoduleFingerprint canonically encodes the constructor inputs; equal
// fingerprints mean structurally equal submodules. Tokens are quoted so
// index names cannot collide with the separators.
func submoduleFingerprint(ambient *freemodule.Module, basis Family, order *SupportOrder, cfg Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "a%d|u%t|pc%t|nc%t|o:", ambient.ID(),
		cfg.Unitriangular, cfg.PivotCheck, cfg.NoCoercion)
	for _, ix := range order.Indices() {
		b.WriteString(strconv.Quote(ix))
		b.WriteByte(',')
	}
	b.WriteString("|b:")
	r := ambient.Ring()
	for _, key := range basis.Keys() {
		vec, _ := basis.Vector(key)
		b.WriteString(strconv.Quote(key))
		b.WriteByte('=')
		for _, ix := range vec.Support() {
			b.WriteString(strconv.Quote(ix))
			b.WriteByte(':')
			b.WriteString(strconv.Quote(r.Format(vec.Coeff(ix))))
			b.WriteByte(';')
		}
		b.WriteByte('|')
	}

	return b.String()
}

// Ambient returns the ambient free module.
func (s *SubmoduleWithBasis) Ambient() *freemodule.Module { return s.ambient }

// Space returns the submodule's own free module, generated by the family's
// generator keys. Submodule elements are elements of this module.
func (s *SubmoduleWithBasis) Space() *freemodule.Module { return s.space }

// SupportOrder returns the order under which the basis is echelon.
func (s *SubmoduleWithBasis) SupportOrder() *SupportOrder { return s.order }

// Basis returns the underlying echelon family.
func (s *SubmoduleWithBasis) Basis() Family { return s.family }

// Unitriangular reports whether the basis was declared unitriangular.
func (s *SubmoduleWithBasis) Unitriangular() bool { return s.opts.Unitriangular }

// Rank returns the number of generators, or freemodule.InfiniteRank for an
// infinite family.
func (s *SubmoduleWithBasis) Rank() int {
	if !s.family.Finite() {
		return freemodule.InfiniteRank
	}

	return len(s.family.Keys())
}

// String renders the submodule by its generators.
func (s *SubmoduleWithBasis) String() string {
	if !s.family.Finite() {
		return fmt.Sprintf("submodule of %s with infinite echelon basis", s.ambient)
	}
	parts := make([]string, 0, len(s.family.Keys()))
	for _, key := range s.family.Keys() {
		vec, _ := s.family.Vector(key)
		parts = append(parts, vec.String())
	}

	return fmt.Sprintf("submodule of %s spanned by (%s)", s.ambient, strings.Join(parts, ", "))
}

// Lift embeds a submodule element into the ambient module: the linear
// extension of generator key ↦ echelon vector.
//
// Errors:
//   - ErrNilSubmodule     – s is nil.
//   - ErrAmbientMismatch  – x does not belong to Space().
//   - ErrBadFamily        – the family cannot resolve a support key.
func (s *SubmoduleWithBasis) Lift(x freemodule.Element) (freemodule.Element, error) {
	if s == nil {
		return freemodule.Element{}, ErrNilSubmodule
	}
	if x.Module() != s.space {
		return freemodule.Element{}, fmt.Errorf("%w: element of %s is not a submodule element",
			ErrAmbientMismatch, x.Module())
	}

	acc := s.ambient.Zero()
	var (
		vec freemodule.Element
		ok  bool
		err error
	)
	for _, key := range x.Support() {
		vec, ok = s.family.Vector(key)
		if !ok {
			return freemodule.Element{}, fmt.Errorf("%w: no vector for key %q", ErrBadFamily, key)
		}
		acc, err = acc.Add(vec.ScalarMul(x.Coeff(key)))
		if err != nil {
			return freemodule.Element{}, err
		}
	}

	return acc, nil
}

// LiftMorphism exposes Lift as an explicit injective morphism
// Space() → Ambient(), suitable for embedding registration.
func (s *SubmoduleWithBasis) LiftMorphism() *freemodule.Morphism {
	s.liftOnce.Do(func() {
		s.liftM, _ = freemodule.NewMorphism(s.space, s.ambient, s.Lift)
	})

	return s.liftM
}

// Retract projects an ambient element back into the submodule; it is the
// exact inverse of Lift on the span: Retract(Lift(y)) == y for every
// submodule element y.
//
// Errors:
//   - ErrNilSubmodule    – s is nil.
//   - ErrInfiniteRank    – the family is infinite.
//   - ErrAmbientMismatch – v does not belong to the ambient module.
//   - *NotInSpanError    – v is not a ring-linear combination of the basis
//     (matches ErrNotInSpan; carries the offending residual).
func (s *SubmoduleWithBasis) Retract(v freemodule.Element) (freemodule.Element, error) {
	if err := s.checkSolvable(v); err != nil {
		return freemodule.Element{}, err
	}
	res, err := s.slv.eliminate(v, elimSolve, nil)
	if err != nil {
		return freemodule.Element{}, err
	}

	return s.space.NewElement(res.coeffs)
}

// Reduce maps an ambient element to the canonical representative of its
// coset modulo the submodule: all pivot components are eliminated and the
// pivot-free remainder is returned as an ambient element. Reduce is linear,
// idempotent, and constant on cosets; Reduce(Lift(y)) == 0 for every
// submodule element y.
//
// Over rings where pivot division can fail (e.g. ℤ with non-unit pivots and
// the basis not declared unitriangular), the remainder may not exist; the
// ring's division error is then propagated.
func (s *SubmoduleWithBasis) Reduce(v freemodule.Element) (freemodule.Element, error) {
	if err := s.checkSolvable(v); err != nil {
		return freemodule.Element{}, err
	}
	res, err := s.slv.eliminate(v, elimReduce, nil)
	if err != nil {
		return freemodule.Element{}, err
	}

	return s.ambient.NewElement(res.residual)
}

// ReduceMorphism exposes Reduce as an idempotent endomorphism of the
// ambient module.
func (s *SubmoduleWithBasis) ReduceMorphism() *freemodule.Morphism {
	s.redOnce.Do(func() {
		s.redM, _ = freemodule.NewMorphism(s.ambient, s.ambient, s.Reduce)
	})

	return s.redM
}

// ProjectCokernel eliminates every pivot component of v and reads off the
// remainder on the declared cokernel indices.
//
// Errors mirror Reduce, plus *IncompleteComplementError (matching
// ErrIncompleteComplement) when the remainder's leading term is neither a
// pivot nor a declared cokernel index — a caller contract violation.
func (s *SubmoduleWithBasis) ProjectCokernel(v freemodule.Element, cokernel map[string]bool) (map[string]ring.Scalar, error) {
	if err := s.checkSolvable(v); err != nil {
		return nil, err
	}
	res, err := s.slv.eliminate(v, elimProject, cokernel)
	if err != nil {
		return nil, err
	}

	return res.cokernel, nil
}

// checkSolvable gates the solver-backed operations.
func (s *SubmoduleWithBasis) checkSolvable(v freemodule.Element) error {
	if s == nil {
		return ErrNilSubmodule
	}
	if s.slv == nil {
		return fmt.Errorf("%w: family is not finite", ErrInfiniteRank)
	}
	if v.Module() != s.ambient {
		return fmt.Errorf("%w: element of %s, want %s", ErrAmbientMismatch, v.Module(), s.ambient)
	}

	return nil
}

// CokernelBasisIndices returns the ambient basis indices not used as pivots
// by the submodule, in ambient basis order. These indices span a complement
// of the submodule and serve as the quotient's basis index set. Computed
// once, then cached.
//
// Errors:
//   - ErrInfiniteRank – infinite family, or unbounded ambient module.
func (s *SubmoduleWithBasis) CokernelBasisIndices() ([]string, error) {
	if s == nil {
		return nil, ErrNilSubmodule
	}
	s.cokOnce.Do(func() {
		if s.slv == nil {
			s.cokErr = fmt.Errorf("%w: family is not finite", ErrInfiniteRank)

			return
		}
		if !s.ambient.Finite() {
			s.cokErr = fmt.Errorf("%w: ambient has unbounded basis", ErrInfiniteRank)

			return
		}
		pivots := s.slv.pivots()
		for _, ix := range s.ambient.Indices() {
			if _, isPivot := pivots[ix]; !isPivot {
				s.cok = append(s.cok, ix)
			}
		}
	})
	if s.cokErr != nil {
		return nil, s.cokErr
	}
	out := make([]string, len(s.cok))
	copy(out, s.cok)

	return out, nil
}

// Contains reports whether v lies in the submodule's span. It never fails
// on span membership itself: a NotInSpan outcome is reported as false.
func (s *SubmoduleWithBasis) Contains(v freemodule.Element) (bool, error) {
	_, err := s.Retract(v)
	if err == nil {
		return true, nil
	}
	var nis *NotInSpanError
	if errors.As(err, &nis) {
		return false, nil
	}

	return false, err
}

// IsSubmoduleOf reports whether every generator of s lies in other, where
// other is the shared ambient module itself (trivially true) or another
// submodule of the same ambient. Generator checks are independent pure
// computations and run concurrently.
//
// Errors:
//   - ErrNilSubmodule   – s or other is nil.
//   - ErrAmbientMismatch – other has a different ambient module.
//   - ErrInfiniteRank    – s has infinite rank (documented limitation).
func (s *SubmoduleWithBasis) IsSubmoduleOf(other Container) (bool, error) {
	if s == nil || other == nil {
		return false, ErrNilSubmodule
	}
	if am, ok := other.(*freemodule.Module); ok {
		if am != s.ambient {
			return false, fmt.Errorf("%w: %s vs %s", ErrAmbientMismatch, s.ambient, am)
		}

		return true, nil
	}
	if other.Ambient() != s.ambient {
		return false, fmt.Errorf("%w: %s vs %s", ErrAmbientMismatch, s.ambient, other.Ambient())
	}
	if !s.family.Finite() {
		return false, fmt.Errorf("%w: IsSubmoduleOf needs a finite basis", ErrInfiniteRank)
	}

	keys := s.family.Keys()
	inside := make([]bool, len(keys))

	var g errgroup.Group
	for pos, key := range keys {
		pos, key := pos, key
		g.Go(func() error {
			vec, ok := s.family.Vector(key)
			if !ok {
				return fmt.Errorf("%w: no vector for key %q", ErrBadFamily, key)
			}
			contained, err := other.Contains(vec)
			if err != nil {
				return err
			}
			inside[pos] = contained

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	for _, ok := range inside {
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
