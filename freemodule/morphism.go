// SPDX-License-Identifier: MIT
// Package freemodule: Morphism — an explicit linear map between modules,
// and the Embedding capability consulted by mixed-module arithmetic.

package freemodule

import "fmt"

// Embedding is the capability a module consults when coercing foreign
// elements: a structural linear map from Domain into Codomain.
// It is satisfied by *Morphism and by richer types (such as a submodule's
// lift map) that want to act as coercions.
type Embedding interface {
	// Domain returns the source module.
	Domain() *Module

	// Codomain returns the target module.
	Codomain() *Module

	// Apply maps an element of Domain to its image in Codomain.
	Apply(Element) (Element, error)
}

// Morphism is an explicit linear map between two modules. The linearity of
// the underlying function is the constructor caller's responsibility.
type Morphism struct {
	domain   *Module
	codomain *Module
	apply    func(Element) (Element, error)
}

// NewMorphism wraps apply as a linear map dom → cod.
//
// Errors:
//   - ErrNilModule   – dom or cod is nil.
//   - ErrNilMorphism – apply is nil.
func NewMorphism(dom, cod *Module, apply func(Element) (Element, error)) (*Morphism, error) {
	if dom == nil || cod == nil {
		return nil, ErrNilModule
	}
	if apply == nil {
		return nil, ErrNilMorphism
	}

	return &Morphism{domain: dom, codomain: cod, apply: apply}, nil
}

// Domain returns the source module.
func (f *Morphism) Domain() *Module { return f.domain }

// Codomain returns the target module.
func (f *Morphism) Codomain() *Module { return f.codomain }

// Apply maps x through the morphism after checking that x belongs to the
// domain module.
//
// Errors:
//   - ErrNilMorphism    – f is nil.
//   - ErrModuleMismatch – x does not belong to Domain().
//   - any error produced by the wrapped function.
func (f *Morphism) Apply(x Element) (Element, error) {
	if f == nil {
		return Element{}, ErrNilMorphism
	}
	if x.Module() != f.domain {
		return Element{}, fmt.Errorf("%w: element of %s fed to morphism from %s",
			ErrModuleMismatch, x.Module(), f.domain)
	}

	return f.apply(x)
}

// String renders the morphism endpoints.
func (f *Morphism) String() string {
	if f == nil {
		return "<nil morphism>"
	}

	return fmt.Sprintf("morphism: %s → %s", f.domain, f.codomain)
}
