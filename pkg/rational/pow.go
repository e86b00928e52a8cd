package rational

import (
	"math"
	"math/big"
)

// PowInt raises r to the (possibly negative) integer power exp, returning
// null for exponents whose bit length exceeds 1000 (a guard against
// unbounded recursion depth/time, per the spec). Uses the recursive
// square-and-multiply shape x^(2k) = (x^k)^2, x^(2k+1) = x^(2k) * x, with
// every intermediate passed back through maybeReduce.
func (r *BoundedRational) PowInt(exp *big.Int) *BoundedRational {
	if r == nil || exp.BitLen() > 1000 {
		return nil
	}
	if exp.Sign() == 0 {
		return One()
	}

	negative := exp.Sign() < 0
	e := new(big.Int).Abs(exp)
	result := powIntRec(r, e)
	if result == nil {
		return nil
	}
	if !negative {
		return result
	}
	inv, err := result.Inverse()
	if err != nil {
		return nil
	}
	return inv
}

func powIntRec(x *BoundedRational, e *big.Int) *BoundedRational {
	if e.Sign() == 0 {
		return One()
	}
	half := new(big.Int).Rsh(e, 1)
	xk := powIntRec(x, half)
	if xk == nil {
		return nil
	}
	x2k := xk.Multiply(xk)
	if e.Bit(0) == 0 {
		return x2k
	}
	if x2k == nil {
		return nil
	}
	return x2k.Multiply(x)
}

// PowRat raises r to a rational power, requiring the exponent's
// denominator to fit in 30 bits: computes nth_root(r, denom) and raises
// that to the integer numerator power.
func (r *BoundedRational) PowRat(exp *BoundedRational) (*BoundedRational, error) {
	if r == nil || exp == nil {
		return nil, nil
	}
	if exp.Denom().BitLen() > 30 {
		return nil, newArithmeticError("PowRat: exponent denominator too large")
	}
	denom := int(exp.Denom().Int64())
	root, err := NthRoot(r, denom)
	if err != nil || root == nil {
		return root, err
	}
	return root.PowInt(exp.Num()), nil
}

// DigitsRequired returns the least n such that r*10^n is an integer (the
// max of the power-of-2 and power-of-5 multiplicities in r's reduced
// denominator), or math.MaxInt32 if the denominator has any other prime
// factor.
func DigitsRequired(r *BoundedRational) int {
	den := new(big.Int).Set(r.Denom())
	two, five := big.NewInt(2), big.NewInt(5)
	a, b := 0, 0
	for new(big.Int).Mod(den, two).Sign() == 0 {
		den.Div(den, two)
		a++
	}
	for new(big.Int).Mod(den, five).Sign() == 0 {
		den.Div(den, five)
		b++
	}
	if den.Cmp(big.NewInt(1)) != 0 {
		return math.MaxInt32
	}
	if a > b {
		return a
	}
	return b
}
