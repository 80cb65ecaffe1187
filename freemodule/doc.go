// Package freemodule implements free modules with basis over an exact
// commutative ring: formal linear combinations of named basis elements,
// their arithmetic, and explicit linear morphisms between modules.
//
// The freemodule package provides:
//
//   - Module — a free module with either a finite ordered basis (New) or an
//     open-ended index universe (NewUnbounded), over any ring.Ring.
//   - Element — an immutable formal linear combination bound to its Module:
//     construction from coefficient maps, coefficient extraction,
//     Add/Sub/Neg/ScalarMul, exact Equal, deterministic String.
//   - Morphism — an explicit linear map with Domain, Codomain and Apply.
//   - An embedding registry: a Module may register a structural embedding
//     from another module; mixed arithmetic and equality consult the
//     registry and coerce operands automatically.
//
// Elements are value-like: every operation returns a fresh Element and
// never mutates its operands. All iteration orders are deterministic
// (basis order on finite modules, lexicographic otherwise), so String and
// error messages are stable across runs.
//
// Modules are identity-stable: each carries a process-unique ID, and basis
// indices only have meaning relative to their owning module. Operations
// mixing elements of unrelated modules fail with ErrModuleMismatch unless
// an embedding between the two modules has been registered.
package freemodule
