package unified

import (
	"math/big"

	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/property"
	"github.com/brooksby/realmath/pkg/rational"
)

// smallLnBases are the bases spec.md §4.5.2's ln decomposition rule
// recognizes: ln(n) becomes k*ln(base) whenever n is an exact power of one
// of these.
var smallLnBases = []int64{2, 3, 5, 6, 7, 10}

// Sqrt returns the square root of u, panicking with ErrDomain on a
// negative argument. A purely rational u is reduced via extract-square to
// keep the result's SQRT argument canonical; sqrt(exp(a)) folds to
// exp(a/2) directly.
func Sqrt(u *Real) *Real {
	if u.rat.Sign() < 0 {
		panic(newDomainError("sqrt of a negative number"))
	}
	if u.IsZero() {
		return FromRational(rational.Zero())
	}
	if prop, ok := u.Property(); ok {
		switch prop.Kind {
		case property.KindOne:
			return sqrtOfRational(u.rat)
		case property.KindExp:
			if half, err := prop.Arg.Divide(rational.Two()); err == nil && half != nil {
				coeffSqrt := sqrtOfRational(u.rat)
				e := property.Exp(half)
				ecr := propertyToCR(e)
				if coeffSqrt.prop != nil && coeffSqrt.prop.IsOne() {
					return newRaw(coeffSqrt.rat, ecr, &e)
				}
				return FromConstructive(constructive.Multiply(coeffSqrt.Constructive(), ecr))
			}
		}
	}
	return FromConstructive(constructive.Sqrt(u.Constructive()))
}

// sqrtOfRational returns sqrt(r) for r >= 0, via extract-square: r =
// coeff^2 * arg with arg square-free, so sqrt(r) = coeff * sqrt(arg).
func sqrtOfRational(r *rational.BoundedRational) *Real {
	coeff, arg := extractSquareRat(r)
	if arg == nil || arg.CompareTo(rational.One()) == 0 {
		return FromRational(coeff)
	}
	p := property.Sqrt(arg)
	return New(coeff, propertyToCR(p), &p)
}

// integerPowerOf reports whether value equals base^k exactly for some
// k >= 0, base > 1.
func integerPowerOf(base, value *big.Int) (int64, bool) {
	if base.Cmp(big.NewInt(1)) <= 0 || value.Sign() <= 0 {
		return 0, false
	}
	cur := big.NewInt(1)
	baseBig := new(big.Int).Set(base)
	for k := int64(0); k <= 4096; k++ {
		if cur.Cmp(value) == 0 {
			return k, true
		}
		if cur.Cmp(value) > 0 {
			return 0, false
		}
		cur.Mul(cur, baseBig)
	}
	return 0, false
}

// lnSmallPrimePower recognizes ln(n) = k*ln(base) when n is an exact
// power of base, for base in smallLnBases.
func lnSmallPrimePower(r *rational.BoundedRational) *Real {
	n, err := r.BigInt()
	if err != nil || n.Sign() <= 0 {
		return nil
	}
	for _, base := range smallLnBases {
		if k, ok := integerPowerOf(big.NewInt(base), n); ok && k > 0 {
			p := property.Ln(rational.FromLong(base))
			return newRaw(rational.FromLong(k), propertyToCR(p), &p)
		}
	}
	return nil
}

// lnSqrtPattern recognizes ln(u) = (k + 1/2)*ln(n) when u carries a SQRT(n)
// property and its rational coefficient is an exact integer power of n.
func lnSqrtPattern(u *Real) *Real {
	if u.prop == nil || u.prop.Kind != property.KindSqrt {
		return nil
	}
	ratInt, err := u.rat.BigInt()
	if err != nil {
		return nil
	}
	nInt, err := u.prop.Arg.BigInt()
	if err != nil {
		return nil
	}
	k, ok := integerPowerOf(nInt, ratInt)
	if !ok {
		return nil
	}
	kHalf := rational.FromLong(k).Add(rationalHalf())
	p := property.Ln(u.prop.Arg)
	return newRaw(kHalf, propertyToCR(p), &p)
}

func rationalHalf() *rational.BoundedRational { return halfRat }

// Ln returns the natural logarithm of u, panicking with ErrDomain on a
// non-positive argument. Per spec.md §4.5.2, a purely rational argument
// below 1 is inverted (ln(r) = -ln(1/r)), then checked against the
// small-prime power rule before falling back to a bare LN property; the
// n^k*sqrt(n) decomposition is checked first for any argument.
func Ln(u *Real) *Real {
	if u.rat.Sign() < 0 || (u.IsZero()) {
		panic(newDomainError("ln of a non-positive number"))
	}
	if v := lnSqrtPattern(u); v != nil {
		return v
	}
	prop, ok := u.Property()
	if !ok || !prop.IsOne() {
		return FromConstructive(constructive.Ln(u.Constructive()))
	}

	r := u.rat
	one := rational.One()
	if r.CompareTo(one) == 0 {
		return FromRational(rational.Zero())
	}
	if r.CompareTo(one) < 0 {
		if inv, err := r.Inverse(); err == nil && inv != nil {
			return Ln(FromRational(inv)).Negate()
		}
	}
	if v := lnSmallPrimePower(r); v != nil {
		return v
	}
	p := property.Ln(r)
	return New(rational.One(), propertyToCR(p), &p)
}

// Log returns the base-10 logarithm of u, panicking with ErrDomain on a
// non-positive argument.
func Log(u *Real) *Real {
	if u.rat.Sign() < 0 || u.IsZero() {
		panic(newDomainError("log of a non-positive number"))
	}
	prop, ok := u.Property()
	if ok && prop.IsOne() {
		r := u.rat
		if r.CompareTo(rational.One()) == 0 {
			return FromRational(rational.Zero())
		}
		p := property.Log(r)
		return New(rational.One(), propertyToCR(p), &p)
	}
	return FromConstructive(constructive.Divide(constructive.Ln(u.Constructive()), ln10()))
}

// expMagnitudeBound is the absolute value beyond which Exp refuses to
// evaluate, per spec.md §4.5.5.
var expMagnitudeBound = big.NewInt(2000000)

// Exp returns e^u, folding exp(ln(r)*rat) back to r^rat when u carries an
// LN property, tagging e^r with an EXP(r) property for a rational r, and
// panicking with ErrTooBig when u's magnitude exceeds 2,000,000.
func Exp(u *Real) *Real {
	if prop, ok := u.Property(); ok && prop.Kind == property.KindLn {
		s := FromRational(prop.Arg)
		if result := powRationalBase(s, u.rat); result != nil {
			return result
		}
	}
	if appr := constructive.Approximate(u.Constructive(), 0); appr != nil {
		if new(big.Int).Abs(appr).Cmp(expMagnitudeBound) > 0 {
			panic(newTooBigError("exp argument too large"))
		}
	}
	if prop, ok := u.Property(); ok && prop.IsOne() {
		e := property.Exp(u.rat)
		return newRaw(rational.One(), propertyToCR(e), &e)
	}
	return FromConstructive(constructive.Exp(u.Constructive()))
}

// powRationalBase computes base^exp for a rational exponent against a
// purely rational base, returning nil when the result cannot be produced
// exactly (the caller then falls back to the generic CR path).
func powRationalBase(base *Real, exp *rational.BoundedRational) *Real {
	if expInt, err := exp.BigInt(); err == nil {
		return powInt(base, expInt)
	}
	if base.rat.Sign() > 0 {
		den := exp.Denom()
		if den.IsInt64() {
			if root, err := rational.NthRoot(base.rat, int(den.Int64())); err == nil && root != nil {
				if p := root.PowInt(exp.Num()); p != nil {
					return FromRational(p)
				}
			}
		}
	}
	return nil
}

// powInt raises base to the integer power n via repeated squaring,
// matching spec.md §4.5.5's "(x^2)^(n/2)" recursion; a negative n inverts
// the positive-power result afterward.
func powInt(base *Real, n *big.Int) *Real {
	if n.Sign() == 0 {
		return FromRational(rational.One())
	}
	negative := n.Sign() < 0
	e := new(big.Int).Abs(n)
	result := powIntRec(base, e)
	if negative {
		return result.Inverse()
	}
	return result
}

func powIntRec(base *Real, e *big.Int) *Real {
	if e.Sign() == 0 {
		return FromRational(rational.One())
	}
	half := new(big.Int).Rsh(e, 1)
	sq := powIntRec(base, half)
	sq = sq.Multiply(sq)
	if e.Bit(0) == 0 {
		return sq
	}
	return sq.Multiply(base)
}

// Pow returns base^exp, the most case-heavy unified-real operation: it
// recognizes the (e*r)^exp and 10^(r*log(s)) shortcuts, delegates integer
// and half-integer rational exponents to powInt/Sqrt, uses nth_root for a
// positive rational base with a representable rational exponent, handles
// negative bases with integer exponents via powInt's own squaring
// recursion, special-cases a zero base, and otherwise falls back to
// exp(exp*ln(base)).
func Pow(base, exp *Real) *Real {
	if base.IsZero() {
		switch {
		case exp.IsZero():
			panic(ErrZeroToZeroth)
		case exp.rat.Sign() < 0:
			panic(newArithmeticError("zero cannot be raised to a negative power"))
		default:
			return FromRational(rational.Zero())
		}
	}
	if exp.IsZero() {
		return FromRational(rational.One())
	}

	if base.prop != nil && base.prop.Kind == property.KindExp && base.prop.Arg.CompareTo(rational.One()) == 0 {
		ratPart := Pow(FromRational(base.rat), exp)
		expPart := Exp(exp)
		return ratPart.Multiply(expPart)
	}

	if base.propOrIrrational().IsOne() && base.rat.CompareTo(rational.Ten()) == 0 {
		if exp.prop != nil && exp.prop.Kind == property.KindLog {
			return Pow(FromRational(exp.prop.Arg), FromRational(exp.rat))
		}
	}

	if exp.prop != nil && exp.prop.IsOne() {
		er := exp.rat
		if erInt, err := er.BigInt(); err == nil {
			return powInt(base, erInt)
		}
		if base.rat.Sign() < 0 {
			panic(newArithmeticError("a negative base requires an integer exponent"))
		}
		if twice := er.Multiply(rational.Two()); twice != nil {
			if twiceInt, err := twice.BigInt(); err == nil {
				return Sqrt(powInt(base, twiceInt))
			}
		}
		if base.propOrIrrational().IsOne() && base.rat.Sign() > 0 {
			den := er.Denom()
			if den.IsInt64() {
				if root, err := rational.NthRoot(base.rat, int(den.Int64())); err == nil && root != nil {
					if p := root.PowInt(er.Num()); p != nil {
						return FromRational(p)
					}
				}
			}
		}
	} else if base.rat.Sign() < 0 {
		panic(newArithmeticError("a negative base requires an integer exponent"))
	}

	return Exp(exp.Multiply(Ln(base)))
}

// factMagnitudeBound is the argument bit length beyond which Fact refuses
// to evaluate, per spec.md §4.5.5.
const factMagnitudeBound = 18

// Fact returns u!, requiring u to be (within a tight tolerance of) a
// non-negative integer, and panicking with ErrTooBig when that integer's
// bit length exceeds 18.
func Fact(u *Real) *Real {
	n, ok := nearestNonNegativeInt(u)
	if !ok {
		panic(newArithmeticError("factorial requires a non-negative integer"))
	}
	if n.BitLen() > factMagnitudeBound {
		panic(newTooBigError("factorial argument too large"))
	}
	return FromRational(rational.FromBigInt(genFactorial(n.Int64())))
}

// nearestNonNegativeInt reports the integer u rounds to, accepting a
// purely rational integer directly and otherwise an approximation that
// agrees with its rounded value to within a tight tolerance.
func nearestNonNegativeInt(u *Real) (*big.Int, bool) {
	if u.prop != nil && u.prop.IsOne() {
		n, err := u.rat.BigInt()
		if err != nil || n.Sign() < 0 {
			return nil, false
		}
		return n, true
	}
	cr := u.Constructive()
	coarse := constructive.Approximate(cr, 0)
	if coarse == nil || coarse.Sign() < 0 {
		return nil, false
	}
	fine := constructive.Approximate(cr, -8)
	if fine == nil {
		return nil, false
	}
	scaled := new(big.Int).Lsh(coarse, 8)
	diff := new(big.Int).Sub(fine, scaled)
	if new(big.Int).Abs(diff).Cmp(big.NewInt(4)) > 0 {
		return nil, false
	}
	return coarse, true
}

// genFactorial computes n! via balanced divide-and-conquer products: each
// recursive call's range roughly doubles in size going back up the call
// stack, keeping the two multiplicands of any one big.Int.Mul close in bit
// length.
func genFactorial(n int64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return productRange(1, n)
}

func productRange(lo, hi int64) *big.Int {
	if lo == hi {
		return big.NewInt(lo)
	}
	if hi-lo == 1 {
		return new(big.Int).Mul(big.NewInt(lo), big.NewInt(hi))
	}
	mid := lo + (hi-lo)/2
	return new(big.Int).Mul(productRange(lo, mid), productRange(mid+1, hi))
}
