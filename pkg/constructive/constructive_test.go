package constructive

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

type signumTest struct {
	input    Real
	expected int
}

var signumTests = []signumTest{
	{FromInt64(-100), -1},
	{FromInt64(-10), -1},
	{FromInt64(-1), -1},
	{FromInt64(1), 1},
	{FromInt64(10), 1},
	{FromInt64(100), 1},
}

func TestSignum(t *testing.T) {
	for _, test := range signumTests {
		if result := Sign(test.input); result != test.expected {
			t.Errorf("expected %d, got %d", test.expected, result)
		}
	}
}

type approximateTest struct {
	input     Real
	expecteds map[int]*big.Int
}

var approximateTests = []approximateTest{
	{
		input: FromInt64(1),
		expecteds: map[int]*big.Int{
			-3: big.NewInt(8),
			-2: big.NewInt(4),
			-1: big.NewInt(2),
			0:  big.NewInt(1),
			1:  big.NewInt(1),
		},
	},
}

func TestApproximate(t *testing.T) {
	for _, test := range approximateTests {
		for precision, expected := range test.expecteds {
			if result := Approximate(test.input, precision); result.Cmp(expected) != 0 {
				t.Errorf("precision %d, expected %v, got %v", precision, expected, result)
			}
		}
	}
}

type cmpTest struct {
	inputA   Real
	inputB   Real
	expected int
}

var cmpTests = []cmpTest{
	{inputA: FromInt64(1), inputB: FromInt64(2), expected: -1},
	{inputA: FromInt64(2), inputB: FromInt64(1), expected: 1},
}

func TestCmp(t *testing.T) {
	for _, test := range cmpTests {
		if result := Cmp(test.inputA, test.inputB); result != test.expected {
			t.Errorf("expected %d, got %d", test.expected, result)
		}
	}
}

func assertEqualAtPrecision(t *testing.T, a, b Real, precision int) {
	t.Helper()
	if result := PreciseCmp(a, b, precision); result != 0 {
		t.Errorf("expected [1] to be equal to [2] at precision %d\n[1]: %s\n[2]: %s", precision, Text(a, -precision, 10), Text(b, -precision, 10))
	}
}

func TestPreciseCmp(t *testing.T) {
	preciseCmpTests := []preciseCmpTest{
		{inputA: FromInt64(1), inputB: FromInt64(2), expected: -1},
		{inputA: FromInt64(2), inputB: FromInt64(1), expected: 1},
		{inputA: FromInt64(5), inputB: FromInt64(5), expected: 0},
	}
	for _, test := range preciseCmpTests {
		if result := PreciseCmp(test.inputA, test.inputB, -50); result != test.expected {
			t.Errorf("expected %d, got %d", test.expected, result)
		}
	}

	// 1/phi = phi - 1
	phi := Phi()
	assertEqualAtPrecision(t, Inverse(phi), Subtract(phi, FromInt(1)), -100)

	// cos(pi/3) = 1/2, sin(pi/3) = sqrt(3)/2
	assertEqualAtPrecision(t, FromRat(1, 2), Cosine(Divide(Pi(), FromInt(3))), -100)
	assertEqualAtPrecision(t, Divide(Sqrt(FromInt(3)), FromInt(2)), Sine(Divide(Pi(), FromInt(3))), -100)
}

type preciseCmpTest struct {
	inputA   Real
	inputB   Real
	expected int
}

// TestCompareToTolerant exercises the spec-mandated tolerant comparison:
// it should resolve a genuine sign difference at a coarse absolute
// precision and report equality (0) for two CRs that agree to within the
// requested tolerance.
func TestCompareToTolerant(t *testing.T) {
	if got := CompareToTolerant(FromInt(2), FromInt(1), -50, -50); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := CompareToTolerant(FromInt(1), FromInt(2), -50, -50); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
	// e^0 and 1 differ by exactly zero, so any tolerance reports equal.
	if got := CompareToTolerant(Exp(FromInt(0)), FromInt(1), -10, -10); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

// TestRefineMSD exercises spec.md §4.2's refine_msd loop directly: it
// should resolve the most-significant-digit position of a nonzero value
// without needing the caller to guess a starting precision.
func TestRefineMSD(t *testing.T) {
	// 1024 = 2^10, so its MSD position is 10.
	if got := refineMSD(FromInt(1024), 0); got != 10 {
		t.Errorf("expected msd 10, got %d", got)
	}
	// 1/1024 = 2^-10, so its MSD position is -10.
	if got := refineMSD(ShiftRight(FromInt(1), 10), -100); got != -10 {
		t.Errorf("expected msd -10, got %d", got)
	}
}

func TestCheckPrecision(t *testing.T) {
	if err := CheckPrecision(0); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := CheckPrecision(1 << (IntSize - 2)); err == nil {
		t.Error("expected a PrecisionOverflow error for a precision near the machine int's bit width")
	} else if err != PrecisionOverflow {
		t.Errorf("expected PrecisionOverflow, got %v", err)
	}
}

// TestInverseIncreasing cross-checks the generic monotone-inverse solver
// against Sqrt, a function whose inverse (squaring) is known directly.
func TestInverseIncreasing(t *testing.T) {
	sqrtViaInverse := InverseIncreasing(Square, Zero(), FromInt(100), FromInt(2))
	assertEqualAtPrecision(t, Sqrt(FromInt(2)), sqrtViaInverse, -80)
}

func TestInverseIncreasingDomainError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a domain panic for an out-of-range argument")
		}
	}()
	out := InverseIncreasing(Square, Zero(), FromInt(10), FromInt(1000))
	Approximate(out, 0)
}

// TestMonotoneDerivative cross-checks the derivative of x^2 at x=3 (which
// should be 2*3=6) using Square as the monotone function.
func TestMonotoneDerivative(t *testing.T) {
	deriv := MonotoneDerivative(Square, Zero(), FromInt(100), FromInt(3))
	assertEqualAtPrecision(t, FromInt(6), deriv, -40)
}

// TestFunctionRegistry exercises pkg/constructive's unary function
// registry, used by pkg/constructive/asin.go's arcsinInverseFunction.
func TestFunctionRegistry(t *testing.T) {
	fn := NewFunction(Square, Zero(), FromInt(100))
	assertEqualAtPrecision(t, Sqrt(FromInt(9)), fn.Inverse(FromInt(9)), -80)
	assertEqualAtPrecision(t, FromInt(6), fn.Derivative(FromInt(3)), -40)
}

func TestText(t *testing.T) {
	ten := FromInt(10)
	assert.Equal(t, "10.00000", Text(ten, 5, 10))
	assert.Equal(t, "a.00000", Text(ten, 5, 16))

	assert.Equal(t, "0.50000", Text(Inverse(FromInt(2)), 5, 10))

	pi := Pi()
	assert.Equal(t, "3.1415926535897932384626433832795028841971693993751058209749445923078164", Text(pi, 70, 10))

	assert.Equal(t, "<undefined: division by zero>", Text(Tangent(Divide(Pi(), FromInt(2))), 70, 10))
}
