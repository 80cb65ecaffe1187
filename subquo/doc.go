// Package subquo implements submodules and quotients of free modules with
// basis, defined by an explicit basis in echelon form, together with the
// sparse triangular solver that maps elements between a submodule, its
// ambient module, and the quotient space.
//
// A SubmoduleWithBasis wraps a family of ambient elements interpreted as an
// echelon-form basis (each generator has a distinct pivot: the lowest-ranked
// index of its support under a caller-supplied SupportOrder, with nothing
// before it). Three derived maps come out of the wrapping:
//
//   - Lift    — embed a submodule element into the ambient module
//     (registered as a structural embedding, so mixed arithmetic coerces);
//   - Retract — the partial inverse of Lift, defined exactly on the span
//     (fails with NotInSpanError elsewhere);
//   - Reduce  — project an ambient element to the canonical representative
//     of its coset modulo the submodule (total, linear, idempotent).
//
// A QuotientModuleWithBasis wraps a submodule plus a cokernel basis: the
// ambient indices not used as pivots, which span a complement of the
// submodule. Its Lift sends a cokernel index to the ambient basis element
// itself; its Retract reduces and reads off cokernel coefficients, and is
// total, unlike the submodule's Retract.
//
// The solver works like a sparse back-substitution over a triangular
// system: residual leading terms are visited in increasing support-order
// rank through a lazy min-heap, each step either eliminates a pivot
// component (dividing exactly in the coefficient ring, or skipping the
// division entirely for unitriangular bases) or disposes of a non-pivot
// term according to the operation. No dense matrix is ever materialized;
// cost is proportional to the number of nonzero entries touched, not to
// the ambient dimension.
//
// Complexity:
//
//	– Time:  O(T log T) per operation, T = nonzero entries touched
//	   • each heap push/pop is O(log T); every popped index is settled once.
//	– Space: O(T) for the residual and the coefficient accumulator.
//
// Construction is normalized: building a submodule (or quotient) twice from
// structurally equal inputs returns the identical object, so results are
// cheap to compare and caches are shared. All derived tables are computed
// at most once per object (sync.Once); operations themselves are pure and
// safe for concurrent use.
//
// Errors are sentinels matched via errors.Is; the two data-carrying
// failures (NotInSpanError, IncompleteComplementError) unwrap to their
// sentinels and carry the offending residual for diagnostics.
package subquo
