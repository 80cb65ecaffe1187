// SPDX-License-Identifier: MIT
// Package freemodule: the Module type — a free module with basis.
//
// A Module is immutable after construction except for its embedding
// registry, which is guarded by a sync.RWMutex so modules can be shared
// across goroutines.

package freemodule

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/submod/ring"
)

// InfiniteRank is returned by Rank for modules with an unbounded index
// universe.
const InfiniteRank = -1

// moduleSeq issues process-unique module IDs.
var moduleSeq atomic.Uint64

// Module is a free module with basis over an exact commutative ring.
//
// A finite Module (New) has an explicit ordered basis; an unbounded Module
// (NewUnbounded) accepts any non-empty string as a basis index. Basis
// indices are meaningful only relative to their owning Module.
type Module struct {
	id      uint64         // process-unique identity
	ring    ring.Ring      // coefficient ring; never nil
	indices []string       // basis order; nil for unbounded modules
	rank    map[string]int // index → position in indices; nil for unbounded

	muEmb      sync.RWMutex         // guards embeddings
	embeddings map[uint64]Embedding // domain module ID → registered embedding
}

// New constructs a free module with the given finite ordered basis over r.
//
// Errors:
//   - ErrNilRing        – r is nil.
//   - ErrEmptyIndex     – an index is the empty string.
//   - ErrDuplicateIndex – an index occurs twice.
func New(r ring.Ring, indices []string) (*Module, error) {
	if r == nil {
		return nil, ErrNilRing
	}
	rank := make(map[string]int, len(indices))
	var ix string
	var pos int
	for pos, ix = range indices {
		if ix == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyIndex, pos)
		}
		if _, seen := rank[ix]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIndex, ix)
		}
		rank[ix] = pos
	}

	// Copy the basis order so callers cannot mutate it afterwards.
	own := make([]string, len(indices))
	copy(own, indices)

	return &Module{
		id:         moduleSeq.Add(1),
		ring:       r,
		indices:    own,
		rank:       rank,
		embeddings: make(map[uint64]Embedding),
	}, nil
}

// NewUnbounded constructs a free module over r whose basis is indexed by
// every non-empty string. Rank reports InfiniteRank and Indices returns nil.
func NewUnbounded(r ring.Ring) (*Module, error) {
	if r == nil {
		return nil, ErrNilRing
	}

	return &Module{
		id:         moduleSeq.Add(1),
		ring:       r,
		embeddings: make(map[uint64]Embedding),
	}, nil
}

// ID returns the process-unique identity of the module.
func (m *Module) ID() uint64 { return m.id }

// Ring returns the coefficient ring.
func (m *Module) Ring() ring.Ring { return m.ring }

// Finite reports whether the module has a finite explicit basis.
func (m *Module) Finite() bool { return m.indices != nil }

// Rank returns the number of basis elements, or InfiniteRank for unbounded
// modules.
func (m *Module) Rank() int {
	if !m.Finite() {
		return InfiniteRank
	}

	return len(m.indices)
}

// Indices returns a copy of the basis order, or nil for unbounded modules.
func (m *Module) Indices() []string {
	if !m.Finite() {
		return nil
	}
	out := make([]string, len(m.indices))
	copy(out, m.indices)

	return out
}

// HasIndex reports whether ix is a valid basis index of the module.
func (m *Module) HasIndex(ix string) bool {
	if ix == "" {
		return false
	}
	if !m.Finite() {
		return true
	}
	_, ok := m.rank[ix]

	return ok
}

// IndexRank returns the position of ix in the basis order of a finite
// module. The second return is false when ix is unknown or the module is
// unbounded.
func (m *Module) IndexRank(ix string) (int, bool) {
	if !m.Finite() {
		return 0, false
	}
	pos, ok := m.rank[ix]

	return pos, ok
}

// Zero returns the zero element of the module.
func (m *Module) Zero() Element {
	return Element{module: m, coeff: nil}
}

// Basis returns the basis element attached to ix.
//
// Errors:
//   - ErrNilModule   – m is nil.
//   - ErrEmptyIndex  – ix is empty.
//   - ErrUnknownIndex – ix is not a basis index of a finite module.
func (m *Module) Basis(ix string) (Element, error) {
	if m == nil {
		return Element{}, ErrNilModule
	}
	if ix == "" {
		return Element{}, ErrEmptyIndex
	}
	if !m.HasIndex(ix) {
		return Element{}, fmt.Errorf("%w: %q not in %s", ErrUnknownIndex, ix, m)
	}

	return Element{module: m, coeff: map[string]ring.Scalar{ix: m.ring.One()}}, nil
}

// NewElement builds the formal linear combination described by coeffs
// (index → coefficient). Zero coefficients are dropped; unspecified indices
// have zero coefficient; insertion order is irrelevant.
//
// Errors:
//   - ErrNilModule    – m is nil.
//   - ErrEmptyIndex   – an index is the empty string.
//   - ErrUnknownIndex – an index outside a finite module's basis.
func (m *Module) NewElement(coeffs map[string]ring.Scalar) (Element, error) {
	if m == nil {
		return Element{}, ErrNilModule
	}
	own := make(map[string]ring.Scalar, len(coeffs))
	for ix, c := range coeffs {
		if ix == "" {
			return Element{}, ErrEmptyIndex
		}
		if !m.HasIndex(ix) {
			return Element{}, fmt.Errorf("%w: %q not in %s", ErrUnknownIndex, ix, m)
		}
		if m.ring.IsZero(c) {
			continue // normalized form stores nonzero coefficients only
		}
		own[ix] = c
	}
	if len(own) == 0 {
		return m.Zero(), nil
	}

	return Element{module: m, coeff: own}, nil
}

// MustElement is NewElement for tests and examples; it panics on error.
func (m *Module) MustElement(coeffs map[string]ring.Scalar) Element {
	el, err := m.NewElement(coeffs)
	if err != nil {
		panic(err)
	}

	return el
}

// String renders the module deterministically, e.g.
// "free module generated by {x0, x1, x2} over ℚ".
func (m *Module) String() string {
	if m == nil {
		return "<nil module>"
	}
	if !m.Finite() {
		return fmt.Sprintf("free module with unbounded basis over %s", m.ring.Name())
	}
	var b strings.Builder
	b.WriteString("free module generated by {")
	b.WriteString(strings.Join(m.indices, ", "))
	b.WriteString("} over ")
	b.WriteString(m.ring.Name())

	return b.String()
}

// RegisterEmbedding records e as the canonical structural embedding from
// e.Domain() into m. Mixed arithmetic between elements of the two modules
// will coerce through e automatically.
//
// Registering the same Embedding value twice is a no-op; registering a
// different embedding for an already-covered domain fails.
//
// Errors:
//   - ErrNilMorphism       – e, its domain or codomain is nil.
//   - ErrModuleMismatch    – e.Codomain() is not m, or e.Domain() is m.
//   - ErrEmbeddingConflict – a different embedding from the same domain
//     is already registered.
func (m *Module) RegisterEmbedding(e Embedding) error {
	if e == nil || e.Domain() == nil || e.Codomain() == nil {
		return ErrNilMorphism
	}
	if e.Codomain() != m || e.Domain() == m {
		return fmt.Errorf("%w: embedding %s → %s cannot be registered on %s",
			ErrModuleMismatch, e.Domain(), e.Codomain(), m)
	}

	m.muEmb.Lock()
	defer m.muEmb.Unlock()
	if prev, ok := m.embeddings[e.Domain().ID()]; ok {
		if prev == e {
			return nil // idempotent re-registration
		}

		return fmt.Errorf("%w: domain %s", ErrEmbeddingConflict, e.Domain())
	}
	m.embeddings[e.Domain().ID()] = e

	return nil
}

// embeddingFrom looks up the registered embedding with the given domain.
func (m *Module) embeddingFrom(dom *Module) (Embedding, bool) {
	m.muEmb.RLock()
	defer m.muEmb.RUnlock()
	e, ok := m.embeddings[dom.id]

	return e, ok
}

// Ambient returns the module itself: a free module is its own ambient
// space. This lets a Module act as the trivial container in APIs that
// accept either a module or a substructure of it.
func (m *Module) Ambient() *Module { return m }

// Contains reports whether v can be interpreted as an element of m: either
// v belongs to m, or v's module has a registered embedding into m.
func (m *Module) Contains(v Element) (bool, error) {
	if v.Module() == nil {
		return false, ErrNilModule
	}
	if v.Module() == m {
		return true, nil
	}
	_, ok := m.embeddingFrom(v.Module())

	return ok, nil
}
