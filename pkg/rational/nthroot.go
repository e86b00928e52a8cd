package rational

import (
	"math"
	"math/big"
)

// integerNthRoot returns floor(n^(1/k)) and whether that root is exact,
// via a float64-bootstrapped Newton iteration on big.Int followed by
// exact verification -- the integer-arithmetic analogue of the spec's
// "evaluate as a CR at precision -10 then verify via big-int pow", since
// big.Int gives us exact integer pow/div directly without routing through
// a constructive real.
func integerNthRoot(n *big.Int, k int) (*big.Int, bool) {
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}

	fp := new(big.Float).SetInt(n)
	f64, _ := fp.Float64()
	guess := math.Pow(f64, 1/float64(k))
	x := big.NewInt(int64(guess))
	if x.Sign() <= 0 {
		x = big.NewInt(1)
	}

	kBig := big.NewInt(int64(k))
	kMinus1 := big.NewInt(int64(k - 1))
	for i := 0; i < 200; i++ {
		xk1 := new(big.Int).Exp(x, kMinus1, nil)
		if xk1.Sign() == 0 {
			xk1 = big.NewInt(1)
		}
		next := new(big.Int).Add(new(big.Int).Mul(kMinus1, x), new(big.Int).Div(n, xk1))
		next.Div(next, kBig)
		if next.Sign() <= 0 {
			next = big.NewInt(1)
		}
		if next.Cmp(x) == 0 {
			break
		}
		x = next
	}

	for new(big.Int).Exp(x, kBig, nil).Cmp(n) > 0 {
		x.Sub(x, big.NewInt(1))
	}
	for new(big.Int).Exp(new(big.Int).Add(x, big.NewInt(1)), kBig, nil).Cmp(n) <= 0 {
		x.Add(x, big.NewInt(1))
	}

	return x, new(big.Int).Exp(x, kBig, nil).Cmp(n) == 0
}

// NthRoot computes x^(1/n) exactly when both the numerator and
// denominator of x (in lowest terms) are perfect n-th powers, returning
// null when they are not -- callers fall back to the CR path (Pow with a
// reciprocal exponent) in that case. A negative x with odd n recurses on
// -x; an even root of a negative x fails with ErrArithmetic.
func NthRoot(x *BoundedRational, n int) (*BoundedRational, error) {
	if x == nil {
		return nil, nil
	}
	if x.Sign() < 0 {
		if n%2 == 0 {
			return nil, newArithmeticError("NthRoot: even root of a negative value")
		}
		neg, err := NthRoot(x.Negate(), n)
		if err != nil || neg == nil {
			return neg, err
		}
		return neg.Negate(), nil
	}

	rootNum, ok := integerNthRoot(x.Num(), n)
	if !ok {
		return nil, nil
	}
	rootDen, ok := integerNthRoot(x.Denom(), n)
	if !ok {
		return nil, nil
	}
	return maybeReduce(new(big.Rat).SetFrac(rootNum, rootDen)), nil
}

// ExtractSquare returns (p, q) with p^2 * q = |x|, q squarefree over the
// range this function actually searches. For bitlen(x) <= 5000 it first
// trial-divides by the squares of small primes {2,3,5,7,11,13}, then
// checks whether the residue divided by each k in 1..=10 is itself a
// perfect square -- optimal for |x| <= 43, per the spec's own caveat.
func ExtractSquare(x *big.Int) (*big.Int, *big.Int) {
	if x.Sign() == 0 {
		return big.NewInt(0), big.NewInt(1)
	}

	n := new(big.Int).Abs(x)
	p := big.NewInt(1)

	if n.BitLen() <= 5000 {
		for _, prime := range []int64{2, 3, 5, 7, 11, 13} {
			primeBig := big.NewInt(prime)
			sq := new(big.Int).Mul(primeBig, primeBig)
			for {
				q, rem := new(big.Int).QuoRem(n, sq, new(big.Int))
				if rem.Sign() != 0 {
					break
				}
				n = q
				p = new(big.Int).Mul(p, primeBig)
			}
		}
	}

	q := new(big.Int).Set(n)
	for k := int64(1); k <= 10; k++ {
		kBig := big.NewInt(k)
		quot, rem := new(big.Int).QuoRem(n, kBig, new(big.Int))
		if rem.Sign() != 0 {
			continue
		}
		if root := new(big.Int).Sqrt(quot); new(big.Int).Mul(root, root).Cmp(quot) == 0 {
			q = kBig
			p = new(big.Int).Mul(p, root)
		}
	}

	return p, q
}
