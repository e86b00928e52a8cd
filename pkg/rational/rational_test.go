package rational

import (
	"math"
	"math/big"
	"testing"

	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew64(t *testing.T, a, b int64) *BoundedRational {
	t.Helper()
	r, err := New64(a, b)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	assertRationalEqual(t, Zero(), Zero())
	assertRationalEqual(t, One(), One())
	assertRationalEqual(t, mustNew64(t, 3, 4), mustNew64(t, 3, 4))
	n, err := New(big.NewInt(3), big.NewInt(4))
	require.NoError(t, err)
	assertRationalEqual(t, n, mustNew64(t, 3, 4))
	assertRationalEqual(t, FromRat(big.NewRat(3, 4)), mustNew64(t, 3, 4))

	_, err = New64(1, 0)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestNumber(t *testing.T) {
	assertRationalEqual(t, One(), Zero().Add(One()))
	assertRationalEqual(t, Zero(), One().Subtract(One()))
	assertRationalEqual(t, mustNew64(t, 3, 4), mustNew64(t, 1, 2).Add(mustNew64(t, 1, 4)))
	assertRationalEqual(t, mustNew64(t, 1, 4), mustNew64(t, 3, 4).Subtract(mustNew64(t, 1, 2)))
	assertRationalEqual(t, mustNew64(t, 3, 8), mustNew64(t, 3, 4).Multiply(mustNew64(t, 1, 2)))
	assertRationalEqual(t, mustNew64(t, -3, 8), mustNew64(t, 3, 4).Multiply(mustNew64(t, -1, 2)))
	assertRationalEqual(t, mustNew64(t, -3, 8), mustNew64(t, 3, 8).Negate())

	inv, err := mustNew64(t, 8, 3).Inverse()
	require.NoError(t, err)
	assertRationalEqual(t, mustNew64(t, 3, 8), inv)

	_, err = Zero().Inverse()
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestDivide(t *testing.T) {
	q, err := mustNew64(t, 3, 4).Divide(mustNew64(t, 1, 2))
	require.NoError(t, err)
	assertRationalEqual(t, mustNew64(t, 3, 2), q)

	_, err = One().Divide(Zero())
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestCompareTo(t *testing.T) {
	assert.Equal(t, 0, Zero().CompareTo(Zero()))
	assert.Equal(t, -1, Zero().CompareTo(One()))
	assert.Equal(t, 1, One().CompareTo(Zero()))

	var null *BoundedRational
	assert.Equal(t, 1, null.CompareTo(One()))
	assert.Equal(t, -1, One().CompareTo(null))
	assert.Equal(t, 0, null.CompareTo(null))
}

func TestNthRoot(t *testing.T) {
	root, err := NthRoot(mustNew64(t, 4, 1), 2)
	require.NoError(t, err)
	assertRationalEqual(t, mustNew64(t, 2, 1), root)

	root, err = NthRoot(mustNew64(t, 8, 27), 3)
	require.NoError(t, err)
	assertRationalEqual(t, mustNew64(t, 2, 3), root)

	root, err = NthRoot(mustNew64(t, -8, 1), 3)
	require.NoError(t, err)
	assertRationalEqual(t, mustNew64(t, -2, 1), root)

	_, err = NthRoot(mustNew64(t, -4, 1), 2)
	require.Error(t, err)

	root, err = NthRoot(mustNew64(t, 2, 1), 2)
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestExtractSquare(t *testing.T) {
	p, q := ExtractSquare(big.NewInt(12))
	assert.Equal(t, "2", p.String())
	assert.Equal(t, "3", q.String())

	p, q = ExtractSquare(big.NewInt(9))
	assert.Equal(t, "3", p.String())
	assert.Equal(t, "1", q.String())
}

func TestPowInt(t *testing.T) {
	assertRationalEqual(t, mustNew64(t, 8, 1), mustNew64(t, 2, 1).PowInt(big.NewInt(3)))
	assertRationalEqual(t, mustNew64(t, 1, 8), mustNew64(t, 2, 1).PowInt(big.NewInt(-3)))
	assertRationalEqual(t, One(), mustNew64(t, 5, 1).PowInt(big.NewInt(0)))
}

func TestDigitsRequired(t *testing.T) {
	assert.Equal(t, 0, DigitsRequired(One()))
	assert.Equal(t, 2, DigitsRequired(mustNew64(t, 1, 4)))
	assert.Equal(t, 1, DigitsRequired(mustNew64(t, 1, 5)))
	assert.Equal(t, math.MaxInt32, DigitsRequired(mustNew64(t, 1, 3)))
}

func TestDisplayString(t *testing.T) {
	assert.Equal(t, "3/4", mustNew64(t, 3, 4).DisplayString(false, false))
	assert.Equal(t, "1 1/4", mustNew64(t, 5, 4).DisplayString(false, true))
	assert.Equal(t, "³⁄₄", mustNew64(t, 3, 4).DisplayString(true, false))
}

func TestTruncatedString(t *testing.T) {
	assert.Equal(t, "0.333", mustNew64(t, 1, 3).TruncatedString(3))
	assert.Equal(t, "-0.666", mustNew64(t, -2, 3).TruncatedString(3))
}

func TestFromDouble(t *testing.T) {
	r, err := FromDouble(0.5)
	require.NoError(t, err)
	assertRationalEqual(t, mustNew64(t, 1, 2), r)

	r, err = FromDouble(3)
	require.NoError(t, err)
	assertRationalEqual(t, mustNew64(t, 3, 1), r)

	_, err = FromDouble(math.NaN())
	require.Error(t, err)
}

func assertRationalEqual(t *testing.T, expected, actual *BoundedRational) {
	t.Helper()
	require.False(t, expected.IsNull(), "expected operand is null")
	require.False(t, actual.IsNull(), "actual operand is null")
	if expected.r.Cmp(actual.r) != 0 {
		t.Errorf("Expected %s, got %s", expected.r.String(), actual.r.String())
	}
}

func TestNumber_Constructive(t *testing.T) {
	assertEqualAtPrecision(t, constructive.FromInt(1), One().Constructive(), -100)
	assertEqualAtPrecision(t, constructive.Pi(), mustNew64(t, 22, 7).Constructive(), -9)
	assertEqualAtPrecision(t, constructive.Pi(), mustNew64(t, 223, 71).Constructive(), -9)
	assertEqualAtPrecision(t, constructive.Pi(), mustNew64(t, 377, 120).Constructive(), -13)
}

func assertEqualAtPrecision(t *testing.T, a, b constructive.Real, precision int) {
	t.Helper()
	if result := constructive.PreciseCmp(a, b, precision); result != 0 {
		t.Errorf("expected [1] to be equal to [2] at precision %d\n[1]: %s\n     %#v\n[2]: %s\n     %#v", precision, constructive.Text(a, -precision, 10), a, constructive.Text(b, -precision, 10), b)
	}
}
