// SPDX-License-Identifier: MIT
// Package subquo: Family — an ordered family of ambient elements serving as
// a submodule's echelon basis.

package subquo

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/submod/freemodule"
)

// Family enumerates the echelon basis vectors of a submodule: an ordered
// mapping generator key → ambient element.
//
// The concrete VectorFamily is always finite. User-supplied implementations
// may report Finite() == false for conceptually infinite families; every
// subquo operation that must enumerate such a family fails with
// ErrInfiniteRank rather than attempting unsound bounded-effort checks.
type Family interface {
	// Keys returns the generator keys in family order. Implementations
	// with Finite() == false may return nil.
	Keys() []string

	// Vector returns the ambient element attached to key.
	Vector(key string) (freemodule.Element, bool)

	// Finite reports whether the family has finitely many generators.
	Finite() bool
}

// VectorFamily is a finite Family backed by an ordered slice of generator
// keys. Immutable after construction.
type VectorFamily struct {
	keys []string
	vec  map[string]freemodule.Element
}

// NewVectorFamily pairs keys with vectors positionally.
//
// Errors:
//   - ErrBadFamily – length mismatch, empty key, or duplicate key.
func NewVectorFamily(keys []string, vectors []freemodule.Element) (*VectorFamily, error) {
	if len(keys) != len(vectors) {
		return nil, fmt.Errorf("%w: %d keys for %d vectors", ErrBadFamily, len(keys), len(vectors))
	}
	vec := make(map[string]freemodule.Element, len(keys))
	var key string
	var pos int
	for pos, key = range keys {
		if key == "" {
			return nil, fmt.Errorf("%w: empty key at position %d", ErrBadFamily, pos)
		}
		if _, seen := vec[key]; seen {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrBadFamily, key)
		}
		vec[key] = vectors[pos]
	}
	own := make([]string, len(keys))
	copy(own, keys)

	return &VectorFamily{keys: own, vec: vec}, nil
}

// FamilyOf builds a VectorFamily keyed "0", "1", … in argument order.
// An empty call yields the empty family (the zero submodule).
func FamilyOf(vectors ...freemodule.Element) (*VectorFamily, error) {
	keys := make([]string, len(vectors))
	for pos := range vectors {
		keys[pos] = strconv.Itoa(pos)
	}

	return NewVectorFamily(keys, vectors)
}

// Keys returns a copy of the generator keys in family order.
func (f *VectorFamily) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)

	return out
}

// Vector returns the ambient element attached to key.
func (f *VectorFamily) Vector(key string) (freemodule.Element, bool) {
	v, ok := f.vec[key]

	return v, ok
}

// Finite reports true: a VectorFamily is always finite.
func (f *VectorFamily) Finite() bool { return true }

// Len returns the number of generators.
func (f *VectorFamily) Len() int { return len(f.keys) }
