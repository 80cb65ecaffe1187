package subquo_test

import (
	"fmt"

	"github.com/katalvlaran/submod/freemodule"
	"github.com/katalvlaran/submod/ring"
	"github.com/katalvlaran/submod/subquo"
)

// ExampleNewSubmodule builds I = span(x0−x1, x1−x2) inside ℚ³ and walks
// the three derived maps: Lift into the ambient module, Retract back, and
// Reduce to the canonical coset representative.
func ExampleNewSubmodule() {
	q := ring.Rationals()
	m, _ := freemodule.New(q, []string{"x0", "x1", "x2"})
	order, _ := subquo.NewSupportOrder([]string{"x0", "x1", "x2"})

	g0, _ := m.NewElement(map[string]ring.Scalar{"x0": q.One(), "x1": q.FromInt(-1)})
	g1, _ := m.NewElement(map[string]ring.Scalar{"x1": q.One(), "x2": q.FromInt(-1)})
	fam, _ := subquo.NewVectorFamily([]string{"a", "b"}, []freemodule.Element{g0, g1})

	sub, _ := subquo.NewSubmodule(m, fam, order, subquo.Unitriangular())
	fmt.Println(sub)

	y, _ := sub.Space().Basis("a")
	up, _ := sub.Lift(y)
	fmt.Println("lift:", up)

	back, _ := sub.Retract(up)
	fmt.Println("retract:", back) // the generator named "a"

	v, _ := m.NewElement(map[string]ring.Scalar{"x0": q.FromInt(2), "x1": q.One()})
	red, _ := sub.Reduce(v)
	fmt.Println("reduce:", red)

	// Output:
	// submodule of free module generated by {x0, x1, x2} over ℚ spanned by (x0 - x1, x1 - x2)
	// lift: x0 - x1
	// retract: a
	// reduce: 3*x2
}

// ExampleNewQuotient quotients ℚ³ by the chain submodule: the classes of
// x0, x1 and x2 coincide, and the class lifts back to the canonical
// representative.
func ExampleNewQuotient() {
	q := ring.Rationals()
	m, _ := freemodule.New(q, []string{"x0", "x1", "x2"})
	order, _ := subquo.NewSupportOrder([]string{"x0", "x1", "x2"})

	g0, _ := m.NewElement(map[string]ring.Scalar{"x0": q.One(), "x1": q.FromInt(-1)})
	g1, _ := m.NewElement(map[string]ring.Scalar{"x1": q.One(), "x2": q.FromInt(-1)})
	fam, _ := subquo.FamilyOf(g0, g1)
	sub, _ := subquo.NewSubmodule(m, fam, order, subquo.Unitriangular())

	quo, _ := subquo.NewQuotient(sub)
	fmt.Println("cokernel:", quo.CokernelIndices())

	x0, _ := m.Basis("x0")
	x1, _ := m.Basis("x1")
	c0, _ := quo.Retract(x0)
	c1, _ := quo.Retract(x1)
	fmt.Println("class of x0:", c0)
	fmt.Println("class of x1:", c1)

	rep, _ := quo.Lift(c0)
	fmt.Println("representative:", rep)

	// Output:
	// cokernel: [x2]
	// class of x0: x2
	// class of x1: x2
	// representative: x2
}

// ExampleSubmoduleWithBasis_IsSubmoduleOf compares nested spans inside ℚ⁴.
func ExampleSubmoduleWithBasis_IsSubmoduleOf() {
	q := ring.Rationals()
	m, _ := freemodule.New(q, []string{"x0", "x1", "x2", "x3"})
	order, _ := subquo.NewSupportOrder([]string{"x0", "x1", "x2", "x3"})

	d := func(a, b string) freemodule.Element {
		return m.MustElement(map[string]ring.Scalar{a: q.One(), b: q.FromInt(-1)})
	}

	famF, _ := subquo.FamilyOf(d("x0", "x1"), d("x1", "x2"), d("x2", "x3"))
	F, _ := subquo.NewSubmodule(m, famF, order, subquo.Unitriangular())

	famG, _ := subquo.FamilyOf(d("x0", "x2"))
	G, _ := subquo.NewSubmodule(m, famG, order, subquo.Unitriangular())

	ok, _ := G.IsSubmoduleOf(F)
	fmt.Println("G ⊆ F:", ok)

	x2, _ := m.Basis("x2")
	famH, _ := subquo.FamilyOf(d("x0", "x1"), x2)
	H, _ := subquo.NewSubmodule(m, famH, order, subquo.Unitriangular())

	ok, _ = H.IsSubmoduleOf(F)
	fmt.Println("H ⊆ F:", ok)

	// Output:
	// G ⊆ F: true
	// H ⊆ F: false
}
