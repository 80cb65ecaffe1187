package freemodule_test

import (
	"testing"

	"github.com/katalvlaran/submod/freemodule"
	"github.com/katalvlaran/submod/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQ3 builds the standard test ambient: ℚ³ with basis {x0, x1, x2}.
func newQ3(t *testing.T) *freemodule.Module {
	t.Helper()
	m, err := freemodule.New(ring.Rationals(), []string{"x0", "x1", "x2"})
	require.NoError(t, err, "ℚ³ should construct")

	return m
}

// TestNew_Validation covers constructor error cases.
func TestNew_Validation(t *testing.T) {
	_, err := freemodule.New(nil, []string{"x0"})
	assert.ErrorIs(t, err, freemodule.ErrNilRing, "nil ring must be rejected")

	_, err = freemodule.New(ring.Rationals(), []string{"x0", ""})
	assert.ErrorIs(t, err, freemodule.ErrEmptyIndex, "empty index must be rejected")

	_, err = freemodule.New(ring.Rationals(), []string{"x0", "x1", "x0"})
	assert.ErrorIs(t, err, freemodule.ErrDuplicateIndex, "duplicate index must be rejected")
}

// TestModule_Shape verifies rank, index order and identity of finite and
// unbounded modules.
func TestModule_Shape(t *testing.T) {
	m := newQ3(t)
	assert.True(t, m.Finite())
	assert.Equal(t, 3, m.Rank())
	assert.Equal(t, []string{"x0", "x1", "x2"}, m.Indices())
	assert.True(t, m.HasIndex("x1"))
	assert.False(t, m.HasIndex("x9"))

	pos, ok := m.IndexRank("x2")
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	u, err := freemodule.NewUnbounded(ring.Integers())
	require.NoError(t, err)
	assert.False(t, u.Finite())
	assert.Equal(t, freemodule.InfiniteRank, u.Rank())
	assert.Nil(t, u.Indices())
	assert.True(t, u.HasIndex("anything"))
	assert.NotEqual(t, m.ID(), u.ID(), "module IDs are process-unique")
}

// TestNewElement_Normalization checks that zero coefficients are dropped,
// unknown indices rejected, and insertion order is irrelevant.
func TestNewElement_Normalization(t *testing.T) {
	m := newQ3(t)
	q := m.Ring()

	el, err := m.NewElement(map[string]ring.Scalar{
		"x0": q.FromInt(1),
		"x1": q.Zero(), // dropped
	})
	require.NoError(t, err)
	assert.Equal(t, 1, el.Len(), "zero coefficient must be dropped")
	assert.True(t, q.IsZero(el.Coeff("x1")), "unspecified/zero index reads as 0")

	_, err = m.NewElement(map[string]ring.Scalar{"bogus": q.One()})
	assert.ErrorIs(t, err, freemodule.ErrUnknownIndex, "unknown index must be rejected")

	zero, err := m.NewElement(map[string]ring.Scalar{"x2": q.Zero()})
	require.NoError(t, err)
	assert.True(t, zero.IsZero(), "all-zero coefficient map is the zero element")
}

// TestElement_Arithmetic exercises Add/Sub/Neg/ScalarMul and the exactness
// of cancellation.
func TestElement_Arithmetic(t *testing.T) {
	m := newQ3(t)
	q := m.Ring()
	x0, err := m.Basis("x0")
	require.NoError(t, err)
	x1, err := m.Basis("x1")
	require.NoError(t, err)

	// x0 - x1
	d, err := x0.Sub(x1)
	require.NoError(t, err)
	assert.Equal(t, "x0 - x1", d.String())

	// (x0 - x1) + x1 == x0
	back, err := d.Add(x1)
	require.NoError(t, err)
	eq, err := back.Equal(x0)
	require.NoError(t, err)
	assert.True(t, eq, "(x0 - x1) + x1 must equal x0 exactly")

	// 2*(x0 - x1) - 2*x0 == -2*x1
	twice := d.ScalarMul(q.FromInt(2))
	res, err := twice.Sub(x0.ScalarMul(q.FromInt(2)))
	require.NoError(t, err)
	assert.Equal(t, "-2*x1", res.String())

	// a - a == 0
	cancel, err := d.Sub(d)
	require.NoError(t, err)
	assert.True(t, cancel.IsZero(), "a - a must normalize to zero")

	// Neg is an involution.
	eq, err = d.Neg().Neg().Equal(d)
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestElement_SupportOrder verifies deterministic support on finite modules
// (basis order) regardless of construction order.
func TestElement_SupportOrder(t *testing.T) {
	m := newQ3(t)
	q := m.Ring()

	el := m.MustElement(map[string]ring.Scalar{
		"x2": q.FromInt(3),
		"x0": q.FromInt(2),
	})
	assert.Equal(t, []string{"x0", "x2"}, el.Support())
	assert.Equal(t, "2*x0 + 3*x2", el.String())
}

// TestElement_String covers the rendering corner cases.
func TestElement_String(t *testing.T) {
	m := newQ3(t)
	q := m.Ring()
	half, err := ring.Frac(1, 2)
	require.NoError(t, err)

	assert.Equal(t, "0", m.Zero().String())

	el := m.MustElement(map[string]ring.Scalar{
		"x0": half,
		"x1": q.FromInt(-1),
		"x2": q.One(),
	})
	assert.Equal(t, "1/2*x0 - x1 + x2", el.String())
}

// TestElement_ModuleMismatch ensures unrelated modules refuse to mix.
func TestElement_ModuleMismatch(t *testing.T) {
	a := newQ3(t)
	b := newQ3(t) // structurally equal but a distinct module

	xa, err := a.Basis("x0")
	require.NoError(t, err)
	xb, err := b.Basis("x0")
	require.NoError(t, err)

	_, err = xa.Add(xb)
	assert.ErrorIs(t, err, freemodule.ErrModuleMismatch, "no embedding registered: must not mix")

	_, err = xa.Equal(xb)
	assert.ErrorIs(t, err, freemodule.ErrModuleMismatch)
}

// TestRegisterEmbedding_Coercion registers an embedding Y → X and checks
// that mixed arithmetic and equality coerce through it automatically.
func TestRegisterEmbedding_Coercion(t *testing.T) {
	x := newQ3(t)
	q := x.Ring()
	y, err := freemodule.New(q, []string{"y0"})
	require.NoError(t, err)

	// y0 ↦ x0 - x1
	image := x.MustElement(map[string]ring.Scalar{
		"x0": q.One(),
		"x1": q.FromInt(-1),
	})
	lift, err := freemodule.NewMorphism(y, x, func(v freemodule.Element) (freemodule.Element, error) {
		return image.ScalarMul(v.Coeff("y0")), nil
	})
	require.NoError(t, err)
	require.NoError(t, x.RegisterEmbedding(lift))

	// Re-registering the same embedding is a no-op...
	assert.NoError(t, x.RegisterEmbedding(lift))
	// ...but a different one for the same domain conflicts.
	other, err := freemodule.NewMorphism(y, x, func(v freemodule.Element) (freemodule.Element, error) {
		return x.Zero(), nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, x.RegisterEmbedding(other), freemodule.ErrEmbeddingConflict)

	y0, err := y.Basis("y0")
	require.NoError(t, err)
	x1, err := x.Basis("x1")
	require.NoError(t, err)

	// y0 + x1 coerces to (x0 - x1) + x1 = x0.
	mixed, err := y0.Add(x1)
	require.NoError(t, err)
	assert.Equal(t, "x0", mixed.String())
	assert.Same(t, x, mixed.Module(), "mixed result lands in the codomain module")

	// Equality coerces too: y0 == x0 - x1.
	eq, err := y0.Equal(image)
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestMorphism_Validation covers morphism construction and domain checks.
func TestMorphism_Validation(t *testing.T) {
	x := newQ3(t)

	_, err := freemodule.NewMorphism(nil, x, nil)
	assert.ErrorIs(t, err, freemodule.ErrNilModule)

	_, err = freemodule.NewMorphism(x, x, nil)
	assert.ErrorIs(t, err, freemodule.ErrNilMorphism)

	ident, err := freemodule.NewMorphism(x, x, func(v freemodule.Element) (freemodule.Element, error) {
		return v, nil
	})
	require.NoError(t, err)

	other := newQ3(t)
	foreign, err := other.Basis("x0")
	require.NoError(t, err)
	_, err = ident.Apply(foreign)
	assert.ErrorIs(t, err, freemodule.ErrModuleMismatch, "foreign element must be rejected")
}
