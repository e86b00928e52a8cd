package constructive

import (
	"fmt"
	"math/big"

	"github.com/brooksby/realmath/pkg/cancel"
)

// constructiveAssumedInt implements spec.md §4.3's AssumedInt node: a
// wrapper the caller uses to assert that x is (or is extremely close to)
// an integer, so downstream consumers never need to ask for sub-unit
// precision.
type constructiveAssumedInt struct {
	precisionTracker
	r Real
}

// AssumeInt wraps c, asserting it is an integer. For p < 0 it evaluates c
// at precision 0 and scales, rather than requesting sub-unit precision
// that the caller has already promised won't change the answer.
func AssumeInt(c Real) Real {
	return &constructiveAssumedInt{r: c}
}

func (c *constructiveAssumedInt) approximate(p int) *big.Int {
	if p >= 0 {
		return Approximate(c.r, p)
	}
	return scale(Approximate(c.r, 0), -p)
}

func (c *constructiveAssumedInt) asConstruction() string {
	return fmt.Sprintf("AssumedInt(%s)", c.r.asConstruction())
}

type prescaledAsin struct {
	precisionTracker
	r Real
}

func newPrescaledAsin(c Real) Real {
	return &prescaledAsin{r: c}
}

// approximate implements spec.md §4.3's prescaled asin series for
// |x| < (1/2)^(1/3), using the odd-power Taylor series with coefficients
// (2n)! / (4^n n!^2 (2n+1)), expressed as the term-to-term ratio
// (2n+1)^2 / (2(n+1)(2n+3)) so each iteration is one multiply-then-divide
// on the running term, in the same style as the teacher's prescaledCosine.
func (c *prescaledAsin) approximate(p int) *big.Int {
	if p >= 1 {
		return big.NewInt(0)
	}

	iters := -3*p/2 + 4
	calcPrec := p - boundLog2(2*iters) - 4
	opPrec := p - 3
	opAppr := Approximate(c.r, opPrec)

	term := scale(opAppr, opPrec-calcPrec)
	sum := term
	n := int64(0)
	maxTruncError := bigLsh(big.NewInt(1), uint(p-4-calcPrec))
	for bigAbs(term).Cmp(maxTruncError) >= 0 {
		cancel.CheckPanic()

		term = scale(bigMul(term, opAppr), opPrec)
		term = scale(bigMul(term, opAppr), opPrec)

		numCoef := big.NewInt((2*n + 1) * (2*n + 1))
		denCoef := big.NewInt(2 * (n + 1) * (2*n + 3))
		term = bigDiv(bigMul(term, numCoef), denCoef)

		n++
		sum = bigAdd(sum, term)
	}
	return scale(sum, calcPrec-p)
}

func (c *prescaledAsin) asConstruction() string {
	return fmt.Sprintf("Asin(%s)", c.r.asConstruction())
}

// asinSmallThreshold is (1/2)^(1/3) scaled by 2^10 (i.e. Approximate(x,-10)
// units), the boundary prescaledAsin's series is valid up to.
var asinSmallThreshold = big.NewInt(813)

// Asin computes the arcsine of c, which must lie in [-1, 1]. Values near
// the domain's edges are reflected through asin(x) = sign(x)*(pi/2 -
// asin(sqrt(1-x^2))), which keeps the series argument inside its domain of
// convergence.
func Asin(c Real) Real {
	rough := Approximate(c, -10)
	if bigAbs(rough).Cmp(bigLsh(big.NewInt(1), 10)) > 0 {
		panic(newDomainError("Asin: argument outside [-1, 1]"))
	}

	if bigAbs(rough).Cmp(asinSmallThreshold) <= 0 {
		return newPrescaledAsin(c)
	}

	negative := rough.Sign() < 0
	absC := Abs(c)
	complement := Sqrt(Subtract(One(), Multiply(absC, absC)))
	result := Subtract(Divide(Pi(), Two()), newPrescaledAsin(complement))
	if negative {
		return Negate(result)
	}
	return result
}

// Acos computes the arccosine of c via acos(x) = pi/2 - asin(x).
func Acos(c Real) Real {
	return Subtract(Divide(Pi(), Two()), Asin(c))
}

// Arctan computes the arctangent of any real c via the identity
// atan(x) = asin(x / sqrt(1+x^2)), which avoids the teacher's
// never-terminating naive IntegralArctan(1/x) attempt for non-integer or
// sub-unit x (see the commented-out Arctangent in constructive.go).
func Arctan(c Real) Real {
	return Asin(Divide(c, Sqrt(Add(One(), Multiply(c, c)))))
}

// arcsinInverseFunction is the Function registration (spec.md's "unary
// function registry") for Sine restricted to its principal branch
// [-pi/2, pi/2]; ArcsinViaInverse uses it to provide an independent
// InverseIncreasing-based cross-check of Asin.
var arcsinInverseFunction = NewFunction(Sine, Negate(Divide(Pi(), Two())), Divide(Pi(), Two()))

// ArcsinViaInverse computes arcsin via the generic monotone-inverse
// solver instead of the prescaled Taylor series. It exists to exercise
// and cross-validate InverseIncreasing against Asin (see
// asin_test.go), not as the primary implementation: the series
// form converges far faster.
func ArcsinViaInverse(c Real) Real {
	return arcsinInverseFunction.Inverse(c)
}
