package ring_test

import (
	"testing"

	"github.com/katalvlaran/submod/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRationals_Arithmetic verifies basic field arithmetic over ℚ
// and that operands are never mutated.
func TestRationals_Arithmetic(t *testing.T) {
	q := ring.Rationals()

	half, err := ring.Frac(1, 2)
	require.NoError(t, err, "1/2 should construct")
	third, err := ring.Frac(1, 3)
	require.NoError(t, err, "1/3 should construct")

	sum := q.Add(half, third)
	assert.Equal(t, "5/6", q.Format(sum), "1/2 + 1/3 = 5/6")
	assert.Equal(t, "1/2", q.Format(half), "operand must not be mutated")

	prod := q.Mul(half, third)
	assert.Equal(t, "1/6", q.Format(prod), "1/2 * 1/3 = 1/6")

	quo, err := q.Div(half, third)
	assert.NoError(t, err, "division in a field should succeed")
	assert.Equal(t, "3/2", q.Format(quo), "(1/2)/(1/3) = 3/2")

	assert.True(t, q.IsOne(q.One()), "One is one")
	assert.True(t, q.IsZero(q.Sub(half, half)), "a - a = 0")
	assert.True(t, q.Eq(q.Neg(half), q.Sub(q.Zero(), half)), "-a == 0 - a")
}

// TestRationals_DivisionByZero ensures Frac and Div reject zero divisors.
func TestRationals_DivisionByZero(t *testing.T) {
	q := ring.Rationals()

	_, err := ring.Frac(1, 0)
	assert.ErrorIs(t, err, ring.ErrDivisionByZero, "Frac with zero denominator must error")

	_, err = q.Div(q.One(), q.Zero())
	assert.ErrorIs(t, err, ring.ErrDivisionByZero, "Div by zero must error")
}

// TestIntegers_ExactDivision verifies that ℤ division succeeds exactly when
// the divisor divides the dividend.
func TestIntegers_ExactDivision(t *testing.T) {
	z := ring.Integers()

	six, two, four := z.FromInt(6), z.FromInt(2), z.FromInt(4)

	quo, err := z.Div(six, two)
	assert.NoError(t, err, "6/2 is exact in ℤ")
	assert.True(t, z.Eq(quo, z.FromInt(3)), "6/2 = 3")

	_, err = z.Div(six, four)
	assert.ErrorIs(t, err, ring.ErrInexactDivision, "6/4 is not exact in ℤ")

	_, err = z.Div(six, z.Zero())
	assert.ErrorIs(t, err, ring.ErrDivisionByZero, "6/0 must error")
}

// TestIntegers_Format checks deterministic rendering, including negatives.
func TestIntegers_Format(t *testing.T) {
	z := ring.Integers()

	assert.Equal(t, "-7", z.Format(z.FromInt(-7)))
	assert.Equal(t, "0", z.Format(z.Zero()))
	assert.Equal(t, "ℤ", z.Name())
}

// TestMod_BadModulus ensures moduli below 2 are rejected.
func TestMod_BadModulus(t *testing.T) {
	for _, n := range []int64{-3, 0, 1} {
		_, err := ring.Mod(n)
		assert.ErrorIs(t, err, ring.ErrBadModulus, "modulus %d must be rejected", n)
	}
}

// TestMod_Arithmetic verifies normalized residue arithmetic in ℤ/7ℤ.
func TestMod_Arithmetic(t *testing.T) {
	z7, err := ring.Mod(7)
	require.NoError(t, err)

	assert.Equal(t, "ℤ/7ℤ", z7.Name())
	assert.Equal(t, "3", z7.Format(z7.FromInt(10)), "10 ≡ 3 mod 7")
	assert.Equal(t, "5", z7.Format(z7.FromInt(-2)), "-2 ≡ 5 mod 7")

	five, three := z7.FromInt(5), z7.FromInt(3)
	assert.Equal(t, "1", z7.Format(z7.Add(five, three)), "5+3 ≡ 1 mod 7")
	assert.Equal(t, "1", z7.Format(z7.Mul(five, three)), "5·3 ≡ 1 mod 7")
	assert.True(t, z7.Eq(z7.FromInt(9), z7.FromInt(2)), "9 ≡ 2 mod 7")
}

// TestMod_Division verifies unit inversion in ℤ/nℤ: every nonzero residue is
// a unit for prime n, while composite moduli reject non-units.
func TestMod_Division(t *testing.T) {
	z7, err := ring.Mod(7)
	require.NoError(t, err)

	// 3·5 ≡ 1 (mod 7), so 1/3 ≡ 5.
	quo, err := z7.Div(z7.One(), z7.FromInt(3))
	assert.NoError(t, err)
	assert.Equal(t, "5", z7.Format(quo), "inverse of 3 mod 7 is 5")

	z6, err := ring.Mod(6)
	require.NoError(t, err)

	_, err = z6.Div(z6.One(), z6.FromInt(2))
	assert.ErrorIs(t, err, ring.ErrInexactDivision, "2 is not a unit mod 6")

	_, err = z6.Div(z6.One(), z6.FromInt(6))
	assert.ErrorIs(t, err, ring.ErrDivisionByZero, "6 ≡ 0 mod 6")
}
