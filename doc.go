// Package submod is an exact linear-algebra toolkit for free modules with
// basis: submodules given by an echelon-form basis, the quotients they
// define, and the triangular machinery that maps elements between a
// submodule, its ambient module, and the quotient space.
//
// 🚀 What is submod?
//
//	A small, deterministic library that brings together:
//		• Exact coefficient rings: ℚ, ℤ and ℤ/nℤ — no floats, no epsilons
//		• Free modules with basis: formal linear combinations over any Ring
//		• Submodules with echelon bases: Lift, Retract, Reduce
//		• Quotient modules with an explicit cokernel basis
//		• A sparse triangular solver that never materializes a matrix
//
// ✨ Why choose submod?
//
//   - Exact by construction – every coefficient is a ring element, every
//     comparison is exact equality
//   - Rock-solid guarantees – Retract∘Lift is the identity, Reduce is an
//     idempotent linear projection, all verified by the test suite
//   - Pure Go – no cgo, a minimal dependency surface
//   - Predictable – deterministic iteration orders, sentinel errors,
//     fail-fast validation
//
// Under the hood, everything is organized under three subpackages:
//
//	ring/       — exact commutative rings (Rationals, Integers, Mod n)
//	freemodule/ — free modules with basis, elements, morphisms, embeddings
//	subquo/     — submodules & quotients with echelon bases + the solver
//
// Quick sketch: with ambient basis {x0, x1, x2} over ℚ and the submodule
// spanned by x0−x1 and x1−x2, the quotient has basis {x2}, and
//
//	Reduce(2·x0 + x1) = 3·x2
//
// Dive into the package docs and example tests for full usage patterns.
//
//	go get github.com/katalvlaran/submod
package submod
