package subquo_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/submod/freemodule"
	"github.com/katalvlaran/submod/ring"
	"github.com/katalvlaran/submod/subquo"
)

// buildChain constructs the rank-n chain setup over ℚ: ambient with basis
// x0..x(n-1), submodule spanned by the n-1 consecutive differences
// x(i) − x(i+1), and the worst-case input x0 whose elimination walks the
// whole chain.
func buildChain(b *testing.B, n int) (*subquo.SubmoduleWithBasis, freemodule.Element) {
	b.Helper()
	q := ring.Rationals()
	indices := make([]string, n)
	for i := range indices {
		indices[i] = fmt.Sprintf("x%d", i)
	}
	m, err := freemodule.New(q, indices)
	if err != nil {
		b.Fatalf("ambient construction failed: %v", err)
	}
	order, err := subquo.NewSupportOrder(indices)
	if err != nil {
		b.Fatalf("order construction failed: %v", err)
	}

	gens := make([]freemodule.Element, n-1)
	for i := 0; i < n-1; i++ {
		gens[i] = m.MustElement(map[string]ring.Scalar{
			indices[i]:   q.One(),
			indices[i+1]: q.FromInt(-1),
		})
	}
	fam, err := subquo.FamilyOf(gens...)
	if err != nil {
		b.Fatalf("family construction failed: %v", err)
	}
	sub, err := subquo.NewSubmodule(m, fam, order, subquo.Unitriangular())
	if err != nil {
		b.Fatalf("submodule construction failed: %v", err)
	}

	v, err := m.Basis("x0")
	if err != nil {
		b.Fatalf("basis lookup failed: %v", err)
	}

	return sub, v
}

// benchmarkReduce measures Reduce on the chain of rank n.
func benchmarkReduce(b *testing.B, n int) {
	sub, v := buildChain(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sub.Reduce(v); err != nil {
			b.Fatalf("Reduce failed: %v", err)
		}
	}
}

// benchmarkRetract measures Retract on a full-span element of the chain.
func benchmarkRetract(b *testing.B, n int) {
	sub, v := buildChain(b, n)
	// Shift into the span: x0 - x(n-1) lies in the submodule.
	last, err := sub.Ambient().Basis(fmt.Sprintf("x%d", n-1))
	if err != nil {
		b.Fatalf("basis lookup failed: %v", err)
	}
	w, err := v.Sub(last)
	if err != nil {
		b.Fatalf("setup arithmetic failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sub.Retract(w); err != nil {
			b.Fatalf("Retract failed: %v", err)
		}
	}
}

// BenchmarkReduce_Chain100 measures Reduce over a 100-step elimination chain.
func BenchmarkReduce_Chain100(b *testing.B) { benchmarkReduce(b, 100) }

// BenchmarkReduce_Chain1000 measures Reduce over a 1000-step elimination chain.
func BenchmarkReduce_Chain1000(b *testing.B) { benchmarkReduce(b, 1000) }

// BenchmarkRetract_Chain100 measures Retract over a 100-step elimination chain.
func BenchmarkRetract_Chain100(b *testing.B) { benchmarkRetract(b, 100) }

// BenchmarkRetract_Chain1000 measures Retract over a 1000-step elimination chain.
func BenchmarkRetract_Chain1000(b *testing.B) { benchmarkRetract(b, 1000) }

// BenchmarkNewSubmodule_Interned measures the interning fast path: repeated
// construction from equal inputs.
func BenchmarkNewSubmodule_Interned(b *testing.B) {
	sub, _ := buildChain(b, 100)
	ambient := sub.Ambient()
	order := sub.SupportOrder()
	fam := sub.Basis()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subquo.NewSubmodule(ambient, fam, order, subquo.Unitriangular()); err != nil {
			b.Fatalf("construction failed: %v", err)
		}
	}
}
