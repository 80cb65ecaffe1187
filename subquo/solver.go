// SPDX-License-Identifier: MIT
// Package subquo: the triangular solver — sparse back-substitution over an
// echelon basis family, shared by Retract, Reduce and complement
// projection.
//
// One elimination kernel serves all three operations, selected by a mode
// tag; the modes differ only in how a leading term with no pivot is
// disposed of. Residual leading terms are visited in increasing
// support-order rank through a lazy min-heap: stale entries (indices whose
// coefficient has since been cancelled) are skipped on pop rather than
// removed eagerly.
//
// Termination: when the leading term at rank r is settled, every later
// subtraction touches strictly higher ranks only (pivots lead their
// vectors), so each index is settled exactly once and the residual's
// leading rank strictly increases. Cost is proportional to the nonzero
// entries touched, not to the ambient dimension.

package subquo

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/submod/freemodule"
	"github.com/katalvlaran/submod/ring"
)

// Elimination mode tags for the shared kernel.
const (
	elimSolve   = "Retract"         // fail on a pivot-free leading term
	elimReduce  = "Reduce"          // pass pivot-free terms to the residual
	elimProject = "ProjectCokernel" // record cokernel terms, fail otherwise
)

// solver owns the pivot tables derived from one submodule's basis family.
// Built once at submodule construction; read-only afterwards.
type solver struct {
	ring          ring.Ring
	ambient       *freemodule.Module
	order         *SupportOrder
	unitriangular bool

	pivotGen   map[string]string             // pivot ambient index → generator key
	pivotVec   map[string]freemodule.Element // pivot ambient index → echelon vector
	pivotCoeff map[string]ring.Scalar        // pivot ambient index → pivot coefficient
}

// newSolver builds the pivot tables for the given finite family and
// validates the strict echelon contract: every generator support is covered
// by the order, generators are nonzero, pivots are distinct, and — under
// Options.PivotCheck — unitriangular bases really have identity pivots.
func newSolver(ambient *freemodule.Module, fam Family, order *SupportOrder, opts Options) (*solver, error) {
	sl := &solver{
		ring:          ambient.Ring(),
		ambient:       ambient,
		order:         order,
		unitriangular: opts.Unitriangular,
		pivotGen:      make(map[string]string),
		pivotVec:      make(map[string]freemodule.Element),
		pivotCoeff:    make(map[string]ring.Scalar),
	}

	var (
		key, ix, pivot string
		vec            freemodule.Element
		ok             bool
		r, best        int
	)
	for _, key = range fam.Keys() {
		vec, ok = fam.Vector(key)
		if !ok {
			return nil, fmt.Errorf("%w: no vector for key %q", ErrBadFamily, key)
		}
		if vec.Module() != ambient {
			return nil, fmt.Errorf("%w: generator %q lives in %s, want %s",
				ErrAmbientMismatch, key, vec.Module(), ambient)
		}
		if vec.IsZero() {
			return nil, fmt.Errorf("%w: generator %q", ErrZeroGenerator, key)
		}

		// Pivot = the lowest-ranked support index of the echelon vector.
		pivot, best = "", -1
		for _, ix = range vec.Support() {
			r, ok = order.Rank(ix)
			if !ok {
				return nil, fmt.Errorf("%w: generator %q, index %q", ErrSupportNotCovered, key, ix)
			}
			if best < 0 || r < best {
				pivot, best = ix, r
			}
		}
		if prev, clash := sl.pivotGen[pivot]; clash {
			return nil, fmt.Errorf("%w: generators %q and %q both pivot at %q",
				ErrPivotClash, prev, key, pivot)
		}

		c := vec.Coeff(pivot)
		if opts.Unitriangular && opts.PivotCheck && !sl.ring.IsOne(c) {
			return nil, fmt.Errorf("%w: generator %q has pivot coefficient %s at %q",
				ErrPivotNotUnit, key, sl.ring.Format(c), pivot)
		}

		sl.pivotGen[pivot] = key
		sl.pivotVec[pivot] = vec
		sl.pivotCoeff[pivot] = c
	}

	return sl, nil
}

// pivots returns the set of pivot ambient indices.
func (sl *solver) pivots() map[string]string { return sl.pivotGen }

// termItem is one residual leading-term candidate: an ambient index and its
// rank under the support order. Indices outside the order sort after every
// ordered index (they can never be pivots), ties broken lexicographically.
type termItem struct {
	rank int    // support-order rank; len(order) for unordered indices
	ix   string // ambient index
}

// termPQ is a min-heap of termItem, ordered by (rank, ix) ascending. It is
// used lazily: duplicate entries for an index are allowed, and entries whose
// coefficient has been cancelled in the meantime are skipped when popped.
type termPQ []termItem

func (pq termPQ) Len() int { return len(pq) }

func (pq termPQ) Less(i, j int) bool {
	if pq[i].rank != pq[j].rank {
		return pq[i].rank < pq[j].rank
	}

	return pq[i].ix < pq[j].ix
}

func (pq termPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *termPQ) Push(x interface{}) { *pq = append(*pq, x.(termItem)) }

func (pq *termPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// elimResult carries the outcome of one elimination run. Only the fields
// relevant to the requested mode are populated.
type elimResult struct {
	coeffs   map[string]ring.Scalar // elimSolve: generator key → coefficient
	cokernel map[string]ring.Scalar // elimProject: cokernel index → coefficient
	residual map[string]ring.Scalar // elimReduce: ambient index → coefficient
}

// eliminate runs the sparse triangular back-substitution over v.
//
// At each step the residual's leading term (minimal rank) is inspected:
//   - pivot index: compute the multiplier (pivot-coefficient division,
//     or the coefficient itself when unitriangular), subtract that multiple
//     of the echelon vector, and record the multiplier (elimSolve);
//   - no pivot: elimSolve fails with *NotInSpanError; elimReduce moves the
//     coefficient into the output residual; elimProject records declared
//     cokernel coefficients and fails with *IncompleteComplementError on
//     anything else.
//
// cok is consulted by elimProject only.
func (sl *solver) eliminate(v freemodule.Element, mode string, cok map[string]bool) (*elimResult, error) {
	// Working residual: a mutable copy of v's nonzero coefficients.
	work := v.Coefficients()

	res := &elimResult{
		coeffs:   make(map[string]ring.Scalar),
		cokernel: make(map[string]ring.Scalar),
		residual: make(map[string]ring.Scalar),
	}

	// Seed the leading-term queue with v's support.
	pq := make(termPQ, 0, len(work))
	heap.Init(&pq)
	for ix := range work {
		heap.Push(&pq, termItem{rank: sl.rankOf(ix), ix: ix})
	}

	var (
		it       termItem
		lead     ring.Scalar
		present  bool
		gen      string
		isPivot  bool
		mult     ring.Scalar
		err      error
		vec      freemodule.Element
		ix2      string
		c2, next ring.Scalar
	)
	for pq.Len() > 0 {
		it = heap.Pop(&pq).(termItem)

		// Skip stale entries: the coefficient was cancelled after the push.
		lead, present = work[it.ix]
		if !present {
			continue
		}
		delete(work, it.ix)

		gen, isPivot = sl.pivotGen[it.ix]
		if !isPivot {
			switch mode {
			case elimSolve:
				work[it.ix] = lead // restore the obstruction for diagnostics

				return nil, &NotInSpanError{Residual: sl.asElement(work)}
			case elimReduce:
				res.residual[it.ix] = lead

				continue
			default: // elimProject
				if cok[it.ix] {
					res.cokernel[it.ix] = lead

					continue
				}
				work[it.ix] = lead

				return nil, &IncompleteComplementError{Index: it.ix, Residual: sl.asElement(work)}
			}
		}

		// Pivot elimination: mult = lead / pivotCoeff, division skipped
		// entirely for unitriangular bases.
		if sl.unitriangular {
			mult = lead
		} else {
			mult, err = sl.ring.Div(lead, sl.pivotCoeff[it.ix])
			if err != nil {
				work[it.ix] = lead
				if mode == elimSolve {
					return nil, &NotInSpanError{Residual: sl.asElement(work), Cause: err}
				}

				return nil, fmt.Errorf("%s: eliminating pivot %q: %w", mode, it.ix, err)
			}
		}
		res.coeffs[gen] = mult

		// Subtract mult · vec from the residual. Every touched index has
		// strictly higher rank than the pivot, so already-settled leading
		// terms are never revisited.
		vec = sl.pivotVec[it.ix]
		for _, ix2 = range vec.Support() {
			if ix2 == it.ix {
				continue // the pivot entry cancels exactly
			}
			c2 = sl.ring.Mul(mult, vec.Coeff(ix2))
			if prev, ok := work[ix2]; ok {
				next = sl.ring.Sub(prev, c2)
			} else {
				next = sl.ring.Neg(c2)
			}
			if sl.ring.IsZero(next) {
				delete(work, ix2)

				continue
			}
			work[ix2] = next
			heap.Push(&pq, termItem{rank: sl.rankOf(ix2), ix: ix2}) // lazy duplicate
		}
	}

	return res, nil
}

// rankOf maps an ambient index to its comparator rank; indices outside the
// support order sort after every ordered index.
func (sl *solver) rankOf(ix string) int {
	if r, ok := sl.order.Rank(ix); ok {
		return r
	}

	return sl.order.Len()
}

// asElement rebuilds an ambient element from a raw coefficient map.
// The map is known to hold valid indices of the ambient, so construction
// cannot fail on well-formed solver state.
func (sl *solver) asElement(coeffs map[string]ring.Scalar) freemodule.Element {
	el, err := sl.ambient.NewElement(coeffs)
	if err != nil {
		panic(fmt.Sprintf("subquo: corrupt residual state: %v", err))
	}

	return el
}
