package unified

import (
	"math/big"
	"testing"

	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRat64(t *testing.T, n, d int64) *rational.BoundedRational {
	t.Helper()
	r, err := rational.New64(n, d)
	require.NoError(t, err)
	return r
}

// assertEqualAtPrecision checks that expected and actual agree to within
// 2^precision, the way a caller that only needs a bounded approximation
// would check a constructive-real result.
func assertEqualAtPrecision(t *testing.T, expected, actual *Real, precision int) {
	t.Helper()
	cmp := constructive.PreciseCmp(expected.Constructive(), actual.Constructive(), precision)
	assert.Equal(t, 0, cmp, "expected %s, got %s at precision %d", expected.ToDisplayString(false, false, false), actual.ToDisplayString(false, false, false), precision)
}

func TestFromConstructors(t *testing.T) {
	assert.True(t, FromInt64(0).IsZero())
	assert.False(t, FromInt64(3).IsZero())

	r := FromRational(mustRat64(t, 3, 4))
	assert.Equal(t, 0, r.Rat().CompareTo(mustRat64(t, 3, 4)))

	cr := FromConstructive(constructive.Sqrt(constructive.FromInt64(2)))
	assertEqualAtPrecision(t, Sqrt2(), cr, -50)
}

func TestAddSameFactorMerges(t *testing.T) {
	piTwo := FromRational(mustRat64(t, 2, 1)).Multiply(Pi())
	piThree := FromRational(mustRat64(t, 3, 1)).Multiply(Pi())
	sum := piTwo.Add(piThree)
	want := FromRational(mustRat64(t, 5, 1)).Multiply(Pi())
	assert.True(t, sum.DefinitelyEquals(want))
}

func TestAddZeroShortcuts(t *testing.T) {
	p := Pi()
	assert.True(t, p.Add(Zero()).DefinitelyEquals(p))
	assert.True(t, Zero().Add(p).DefinitelyEquals(p))
}

func TestAddLogsRewrite(t *testing.T) {
	lnTwo := Ln(FromInt64(2))
	lnThree := Ln(FromInt64(3))
	sum := lnTwo.Add(lnThree)
	want := Ln(FromInt64(6))
	assert.True(t, sum.DefinitelyEquals(want))
}

func TestSubtractAndNegate(t *testing.T) {
	five := FromInt64(5)
	two := FromInt64(2)
	assert.True(t, five.Subtract(two).DefinitelyEquals(FromInt64(3)))
	assert.True(t, five.Negate().DefinitelyEquals(FromInt64(-5)))
}

func TestMultiplyRationalShortcuts(t *testing.T) {
	half := FromRational(mustRat64(t, 1, 2))
	four := FromInt64(4)
	assert.True(t, half.Multiply(four).DefinitelyEquals(FromInt64(2)))
	assert.True(t, four.Multiply(half).DefinitelyEquals(FromInt64(2)))
	assert.True(t, Zero().Multiply(Pi()).IsZero())
	assert.True(t, Pi().Multiply(Zero()).IsZero())
}

func TestMultiplySqrtTimesSqrt(t *testing.T) {
	sqrt2 := Sqrt(FromInt64(2))
	sqrt8 := Sqrt(FromInt64(8))
	// sqrt(2)*sqrt(8) = sqrt(16) = 4
	assert.True(t, sqrt2.Multiply(sqrt8).DefinitelyEquals(FromInt64(4)))
}

func TestMultiplyExpTimesExp(t *testing.T) {
	e1 := Exp(FromInt64(1))
	e2 := Exp(FromInt64(2))
	e3 := Exp(FromInt64(3))
	assert.True(t, e1.Multiply(e2).DefinitelyEquals(e3))
}

func TestDivideAndInverse(t *testing.T) {
	six := FromInt64(6)
	three := FromInt64(3)
	assert.True(t, six.Divide(three).DefinitelyEquals(FromInt64(2)))

	inv := FromRational(mustRat64(t, 3, 4)).Inverse()
	assert.True(t, inv.DefinitelyEquals(FromRational(mustRat64(t, 4, 3))))

	assert.Panics(t, func() { Zero().Inverse() })
}

func TestInverseSqrtRewrite(t *testing.T) {
	sqrt2 := Sqrt(FromInt64(2))
	inv := sqrt2.Inverse()
	// 1/sqrt(2) = sqrt(2)/2
	want := sqrt2.Divide(FromInt64(2))
	assertEqualAtPrecision(t, want, inv, -100)
}

func TestInverseExpRewrite(t *testing.T) {
	e := Exp(FromInt64(3))
	inv := e.Inverse()
	want := Exp(FromInt64(-3))
	assert.True(t, inv.DefinitelyEquals(want))
}

func TestShiftLeftRight(t *testing.T) {
	three := FromInt64(3)
	assert.True(t, three.ShiftLeft(2).DefinitelyEquals(FromInt64(12)))
	assert.True(t, three.ShiftRight(1).DefinitelyEquals(FromRational(mustRat64(t, 3, 2))))
}

func TestIsComparableAndCompareTo(t *testing.T) {
	assert.True(t, Pi().IsComparable(Pi()))
	assert.Equal(t, 0, Pi().CompareTo(Pi()))

	assert.True(t, Zero().IsComparable(Zero()))
	assert.Equal(t, 0, Zero().CompareTo(Zero()))

	assert.True(t, FromInt64(2).IsComparable(Pi()))
	assert.Equal(t, -1, FromInt64(2).CompareTo(Pi()))

	sqrt2 := Sqrt(FromInt64(2))
	sqrt3 := Sqrt(FromInt64(3))
	assert.True(t, sqrt2.IsComparable(sqrt3))
	assert.Equal(t, -1, sqrt2.CompareTo(sqrt3))

	negSqrt2 := sqrt2.Negate()
	assert.True(t, negSqrt2.IsComparable(sqrt3))
	assert.Equal(t, -1, negSqrt2.CompareTo(sqrt3))
}

func TestDefinitelyEqualsPiSplit(t *testing.T) {
	third := FromRational(mustRat64(t, 1, 3)).Multiply(Pi())
	sixth := FromRational(mustRat64(t, 1, 6)).Multiply(Pi())
	half := FromRational(mustRat64(t, 1, 2)).Multiply(Pi())
	assert.True(t, third.Add(sixth).DefinitelyEquals(half))
}

func TestEqualsPanics(t *testing.T) {
	assert.Panics(t, func() { Pi().Equals(Pi()) })
	assert.NotPanics(t, func() { Pi().Equals("not a real") })
}

func TestSinCosTanTable(t *testing.T) {
	zero := FromInt64(0)
	sixth := FromRational(mustRat64(t, 1, 6)).Multiply(Pi())   // pi/6
	quarter := FromRational(mustRat64(t, 1, 4)).Multiply(Pi()) // pi/4
	third := FromRational(mustRat64(t, 1, 3)).Multiply(Pi())   // pi/3
	half := FromRational(mustRat64(t, 1, 2)).Multiply(Pi())    // pi/2

	assert.True(t, Sin(zero).DefinitelyEquals(FromInt64(0)))
	assert.True(t, Sin(sixth).DefinitelyEquals(FromRational(mustRat64(t, 1, 2))))
	assert.True(t, Sin(half).DefinitelyEquals(FromInt64(1)))

	assert.True(t, Cos(zero).DefinitelyEquals(FromInt64(1)))
	assert.True(t, Cos(third).DefinitelyEquals(FromRational(mustRat64(t, 1, 2))))

	assert.True(t, Tan(zero).DefinitelyEquals(FromInt64(0)))
	assert.True(t, Tan(quarter).DefinitelyEquals(FromInt64(1)))

	assert.Panics(t, func() { Tan(half) })
}

func TestAsinAtanExactValues(t *testing.T) {
	one := FromInt64(1)
	negOne := FromInt64(-1)
	half := FromRational(mustRat64(t, 1, 2))

	assert.True(t, Asin(FromInt64(0)).DefinitelyEquals(FromInt64(0)))
	assert.True(t, Asin(one).DefinitelyEquals(FromRational(mustRat64(t, 1, 2)).Multiply(Pi())))
	assert.True(t, Asin(negOne).DefinitelyEquals(FromRational(mustRat64(t, -1, 2)).Multiply(Pi())))
	assert.True(t, Asin(half).DefinitelyEquals(FromRational(mustRat64(t, 1, 6)).Multiply(Pi())))

	assert.Panics(t, func() { Asin(FromInt64(2)) })

	assert.True(t, Atan(FromInt64(0)).DefinitelyEquals(FromInt64(0)))
	assert.True(t, Atan(one).DefinitelyEquals(FromRational(mustRat64(t, 1, 4)).Multiply(Pi())))
	assert.True(t, Atan(negOne).DefinitelyEquals(FromRational(mustRat64(t, -1, 4)).Multiply(Pi())))
}

func TestSqrtRational(t *testing.T) {
	assert.True(t, Sqrt(FromInt64(4)).DefinitelyEquals(FromInt64(2)))
	assert.True(t, Sqrt(FromInt64(0)).IsZero())
	assert.Panics(t, func() { Sqrt(FromInt64(-1)) })

	// sqrt(8) = 2*sqrt(2)
	eight := Sqrt(FromInt64(8))
	want := FromInt64(2).Multiply(Sqrt(FromInt64(2)))
	assert.True(t, eight.DefinitelyEquals(want))
}

func TestLnSmallPrimePowers(t *testing.T) {
	ln2 := Ln(FromInt64(2))
	ln8 := Ln(FromInt64(8))
	want := FromInt64(3).Multiply(ln2)
	assert.True(t, ln8.DefinitelyEquals(want))

	assert.True(t, Ln(FromInt64(1)).IsZero())
	assert.Panics(t, func() { Ln(FromInt64(0)) })
	assert.Panics(t, func() { Ln(FromInt64(-1)) })
}

func TestLnOfInverseNegates(t *testing.T) {
	lnHalf := Ln(FromRational(mustRat64(t, 1, 2)))
	want := Ln(FromInt64(2)).Negate()
	assert.True(t, lnHalf.DefinitelyEquals(want))
}

func TestLogBaseTen(t *testing.T) {
	assert.True(t, Log(FromInt64(1)).IsZero())
	assert.Panics(t, func() { Log(FromInt64(0)) })
}

func TestExpAndLnRoundTrip(t *testing.T) {
	three := FromInt64(3)
	back := Exp(Ln(three))
	assertEqualAtPrecision(t, three, back, -200)
}

func TestExpTooBig(t *testing.T) {
	huge := FromRational(rational.FromBigInt(big.NewInt(3000000)))
	assert.Panics(t, func() { Exp(huge) })
}

func TestPowIntegerExponent(t *testing.T) {
	two := FromInt64(2)
	ten := FromInt64(10)
	assert.True(t, Pow(two, ten).DefinitelyEquals(FromInt64(1024)))
	assert.True(t, Pow(two, FromInt64(0)).DefinitelyEquals(FromInt64(1)))
	assert.True(t, Pow(two, FromInt64(-1)).DefinitelyEquals(FromRational(mustRat64(t, 1, 2))))
}

func TestPowHalfExponentIsSqrt(t *testing.T) {
	four := FromInt64(4)
	half := FromRational(mustRat64(t, 1, 2))
	assert.True(t, Pow(four, half).DefinitelyEquals(FromInt64(2)))
}

func TestPowZeroToZeroth(t *testing.T) {
	assert.Panics(t, func() { Pow(Zero(), Zero()) })
	assert.True(t, Pow(Zero(), FromInt64(3)).IsZero())
}

func TestPowNegativeBaseRequiresIntegerExponent(t *testing.T) {
	negTwo := FromInt64(-2)
	assert.True(t, Pow(negTwo, FromInt64(3)).DefinitelyEquals(FromInt64(-8)))
	assert.Panics(t, func() { Pow(negTwo, FromRational(mustRat64(t, 1, 2))) })
}

func TestFactorial(t *testing.T) {
	assert.True(t, Fact(FromInt64(0)).DefinitelyEquals(FromInt64(1)))
	assert.True(t, Fact(FromInt64(5)).DefinitelyEquals(FromInt64(120)))
	assert.Panics(t, func() { Fact(FromRational(mustRat64(t, 1, 2))) })
	assert.Panics(t, func() { Fact(FromInt64(-1)) })
}

func TestToDisplayStringRational(t *testing.T) {
	assert.Equal(t, "0", Zero().ToDisplayString(false, false, false))
	half := FromRational(mustRat64(t, 1, 2))
	assert.Equal(t, half.Rat().DisplayString(false, false), half.ToDisplayString(false, false, false))
}

func TestToDisplayStringSymbolic(t *testing.T) {
	assert.Equal(t, "π", Pi().ToDisplayString(false, false, false))
	two := FromInt64(2)
	assert.Equal(t, "2π", two.Multiply(Pi()).ToDisplayString(false, false, false))
	assert.Equal(t, "√2", Sqrt2().ToDisplayString(false, false, false))
}

func TestTruncatedStringRational(t *testing.T) {
	third := FromRational(mustRat64(t, 1, 3))
	assert.Equal(t, third.Rat().TruncatedString(4), third.TruncatedString(4))
}

func TestInternedConstants(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, One().DefinitelyEquals(FromInt64(1)))
	assert.True(t, Two().DefinitelyEquals(FromInt64(2)))
	assert.True(t, Ten().DefinitelyEquals(FromInt64(10)))
	assert.True(t, Half().DefinitelyEquals(FromRational(mustRat64(t, 1, 2))))
	assert.True(t, NegativeOne().DefinitelyEquals(FromInt64(-1)))
	assert.True(t, Sqrt2().DefinitelyEquals(Sqrt(FromInt64(2))))
	assert.True(t, Ln2().DefinitelyEquals(Ln(FromInt64(2))))
}
