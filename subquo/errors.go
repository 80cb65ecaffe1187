// SPDX-License-Identifier: MIT
// Package subquo: sentinel error set and data-carrying error types.
// All operations return these sentinels and tests check them via errors.Is.
// NotInSpanError and IncompleteComplementError carry diagnostics; their
// Unwrap methods return the matching sentinel so errors.Is still works.

package subquo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/submod/freemodule"
)

var (
	// ErrNilAmbient indicates a nil ambient *freemodule.Module.
	ErrNilAmbient = errors.New("subquo: ambient module is nil")

	// ErrNilFamily indicates a nil basis Family.
	ErrNilFamily = errors.New("subquo: basis family is nil")

	// ErrNilOrder indicates a nil *SupportOrder.
	ErrNilOrder = errors.New("subquo: support order is nil")

	// ErrNilSubmodule indicates a nil *SubmoduleWithBasis.
	ErrNilSubmodule = errors.New("subquo: submodule is nil")

	// ErrEmptySupport indicates an empty string inside a support order.
	ErrEmptySupport = errors.New("subquo: support index is empty")

	// ErrDuplicateSupport indicates a repeated index in a support order.
	ErrDuplicateSupport = errors.New("subquo: duplicate support index")

	// ErrBadFamily indicates malformed family data: mismatched key/vector
	// counts, empty or duplicate generator keys, or a vector that cannot be
	// resolved for a declared key.
	ErrBadFamily = errors.New("subquo: malformed basis family")

	// ErrZeroGenerator indicates a zero vector used as a basis generator;
	// a zero vector has no pivot and cannot be part of an echelon basis.
	ErrZeroGenerator = errors.New("subquo: zero basis generator")

	// ErrSupportNotCovered indicates a generator whose support contains an
	// index missing from the support order.
	ErrSupportNotCovered = errors.New("subquo: generator support not covered by support order")

	// ErrPivotClash indicates two generators sharing the same pivot index,
	// violating the strict echelon property.
	ErrPivotClash = errors.New("subquo: two generators share a pivot")

	// ErrPivotNotUnit is reported under WithPivotCheck when a basis was
	// declared unitriangular but a pivot coefficient is not the ring one.
	ErrPivotNotUnit = errors.New("subquo: pivot coefficient is not the ring identity")

	// ErrNotInSpan indicates a retract of a vector outside the submodule's
	// span. Returned wrapped inside a *NotInSpanError.
	ErrNotInSpan = errors.New("subquo: vector not in submodule span")

	// ErrIncompleteComplement indicates that elimination met a leading term
	// that is neither a pivot nor a declared cokernel index: the caller's
	// cokernel basis does not cover the complement. Returned wrapped inside
	// an *IncompleteComplementError.
	ErrIncompleteComplement = errors.New("subquo: cokernel indices do not cover the complement")

	// ErrInfiniteRank marks operations that are unsupported on infinite
	// families or unbounded ambients. A documented limitation, not a
	// recoverable condition.
	ErrInfiniteRank = errors.New("subquo: not implemented for infinite rank")

	// ErrAmbientMismatch indicates that two structures (or a structure and
	// an element) do not share the same ambient module.
	ErrAmbientMismatch = errors.New("subquo: ambient modules differ")

	// ErrCokernelOverlap indicates an explicit cokernel index that is also
	// a pivot of the submodule.
	ErrCokernelOverlap = errors.New("subquo: cokernel index is a pivot")

	// ErrBadCokernel indicates an explicit cokernel index that is empty,
	// duplicated, or not an ambient basis index.
	ErrBadCokernel = errors.New("subquo: invalid cokernel index")
)

// NotInSpanError reports a failed Retract. Residual is what remained of the
// input after eliminating every pivot component that could be eliminated;
// its leading term is the first obstruction.
type NotInSpanError struct {
	// Residual is the non-eliminable remainder, an ambient element.
	Residual freemodule.Element

	// Cause is the non-nil ring error when the failure came from an
	// inexact pivot division rather than a missing pivot.
	Cause error
}

// Error renders the obstruction.
func (e *NotInSpanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: residual %s (%v)", ErrNotInSpan, e.Residual, e.Cause)
	}

	return fmt.Sprintf("%v: residual %s", ErrNotInSpan, e.Residual)
}

// Unwrap exposes the sentinel (and the ring cause, when present) so that
// errors.Is(err, ErrNotInSpan) matches.
func (e *NotInSpanError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrNotInSpan, e.Cause}
	}

	return []error{ErrNotInSpan}
}

// IncompleteComplementError reports a caller contract violation discovered
// during complement projection: the leading term at Index is neither a
// pivot nor a declared cokernel index.
type IncompleteComplementError struct {
	// Index is the uncovered ambient index.
	Index string

	// Residual is the remainder whose leading term sits at Index.
	Residual freemodule.Element
}

// Error renders the uncovered index and the remainder.
func (e *IncompleteComplementError) Error() string {
	return fmt.Sprintf("%v: index %q, residual %s", ErrIncompleteComplement, e.Index, e.Residual)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrIncompleteComplement)
// matches.
func (e *IncompleteComplementError) Unwrap() error { return ErrIncompleteComplement }
