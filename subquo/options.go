// SPDX-License-Identifier: MIT
// Package subquo: functional options for submodule construction.

package subquo

// Options configures how a SubmoduleWithBasis interprets its basis.
//
// Unitriangular – every pivot coefficient is the ring identity, enabling
// division-free elimination. Correctness of the flag is the caller's
// responsibility unless PivotCheck is also set.
//
// PivotCheck – verify, while the pivot table is built, that a basis
// declared unitriangular really has identity pivots; fail loudly with
// ErrPivotNotUnit instead of silently producing wrong coefficients.
//
// NoCoercion – do not register the lift map as a structural embedding into
// the ambient module; mixed arithmetic will then require explicit Lift
// calls.
type Options struct {
	Unitriangular bool // pivots are the ring identity; skip divisions
	PivotCheck    bool // verify the unitriangular claim while building pivots
	NoCoercion    bool // skip embedding registration on the ambient module
}

// Option represents a functional option for submodule construction.
type Option func(*Options)

// Unitriangular declares the basis unitriangular: every echelon vector's
// pivot coefficient equals the ring one, so elimination never divides.
func Unitriangular() Option {
	return func(o *Options) {
		o.Unitriangular = true
	}
}

// WithPivotCheck enables opportunistic verification of the unitriangular
// claim. Without Unitriangular it has no effect.
func WithPivotCheck() Option {
	return func(o *Options) {
		o.PivotCheck = true
	}
}

// WithoutCoercion skips registering the lift map as an embedding into the
// ambient module.
func WithoutCoercion() Option {
	return func(o *Options) {
		o.NoCoercion = true
	}
}

// DefaultOptions returns the zero configuration: triangular (divisions
// performed), no pivot verification, coercion registered.
func DefaultOptions() Options {
	return Options{}
}
