// SPDX-License-Identifier: MIT
// Package subquo: SupportOrder — the total order on ambient basis indices
// under which triangularity is defined.
//
// The order is stored as a precomputed rank table (index → position) so the
// solver comparator is an O(1) map lookup, never a linear scan of the
// sequence.

package subquo

import (
	"fmt"
	"strings"
)

// SupportOrder is a total order on a set of ambient basis indices: the
// sequence position of an index is its rank, and echelon pivots are taken
// in increasing rank. Immutable after construction.
type SupportOrder struct {
	seq  []string       // indices in rank order
	rank map[string]int // index → rank; len(rank) == len(seq)
}

// NewSupportOrder builds the total order given by seq.
//
// Errors:
//   - ErrEmptySupport     – an index is the empty string.
//   - ErrDuplicateSupport – an index occurs twice.
func NewSupportOrder(seq []string) (*SupportOrder, error) {
	rank := make(map[string]int, len(seq))
	var ix string
	var pos int
	for pos, ix = range seq {
		if ix == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptySupport, pos)
		}
		if _, seen := rank[ix]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSupport, ix)
		}
		rank[ix] = pos
	}
	own := make([]string, len(seq))
	copy(own, seq)

	return &SupportOrder{seq: own, rank: rank}, nil
}

// Rank returns the position of ix in the order; false when ix is not
// covered by the order.
func (o *SupportOrder) Rank(ix string) (int, bool) {
	r, ok := o.rank[ix]

	return r, ok
}

// Len returns the number of ordered indices.
func (o *SupportOrder) Len() int { return len(o.seq) }

// Indices returns a copy of the ordered index sequence.
func (o *SupportOrder) Indices() []string {
	out := make([]string, len(o.seq))
	copy(out, o.seq)

	return out
}

// String renders the order as "[x0, x1, x2]".
func (o *SupportOrder) String() string {
	return "[" + strings.Join(o.seq, ", ") + "]"
}
