package constructive

import (
	"math"
	"math/big"
)

//var (
//	bigZero  = big.NewInt(0)
//	bigOne   = big.NewInt(1)
//	bigTwo   = big.NewInt(2)
//	bigThree = big.NewInt(3)
//	bigFour  = big.NewInt(4)
//	bigFive  = big.NewInt(5)
//	bigSix   = big.NewInt(6)
//	bigSeven = big.NewInt(7)
//	bigEight = big.NewInt(8)
//	bigNine  = big.NewInt(9)
//	bigTen   = big.NewInt(10)
//
//	bigNegOne = big.NewInt(-1)
//)

// bigAdd adds two big integers.
func bigAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// bigSub subtracts two big integers.
func bigSub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

// bigLsh left shifts a big integer by n bits.
func bigLsh(a *big.Int, n uint) *big.Int {
	return new(big.Int).Lsh(a, n)
}

// bigRsh right shifts a big integer by n bits.
func bigRsh(a *big.Int, n uint) *big.Int {
	return new(big.Int).Rsh(a, n)
}

// bigAbs returns the absolute value of a big integer.
func bigAbs(a *big.Int) *big.Int {
	return new(big.Int).Abs(a)
}

func bigBitAnd(a, b *big.Int) *big.Int {
	return new(big.Int).And(a, b)
}

// bigNeg returns the negation of a big integer.
func bigNeg(a *big.Int) *big.Int {
	return new(big.Int).Neg(a)
}

// bigMul multiplies two big integers.
func bigMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// bigDiv divides two big integers.
func bigDiv(a, b *big.Int) *big.Int {
	return new(big.Int).Div(a, b)
}

// bigExp raises a big integer to the power of another big integer modulo m.
func bigExp(a, b, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, b, m)
}

// boundLog2 calculates the base-2 logarithm of a number, rounded up.
func boundLog2(n int) int {
	return int(math.Ceil(math.Log2(math.Abs(float64(n)) + 1)))
}

// bigGCD returns the non-negative greatest common divisor of a and b.
func bigGCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, bigAbs(a), bigAbs(b))
}

// bigIsqrtSeeded computes floor(sqrt(n)) via Newton's method, starting from
// seed when it is a reasonable starting point and otherwise bootstrapping
// from a float64 conversion -- the same bootstrap-then-refine shape the
// teacher's prescaledSqrt already uses for its "high precision" branch, but
// generalized to accept a cached seed so repeated calls at increasing
// precision (the Gauss-Legendre AGM's b_n sequence) can skip the bootstrap.
func bigIsqrtSeeded(n, seed *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return big.NewInt(0)
	}

	x := seed
	if x == nil || x.Sign() <= 0 {
		// Take the float64 root of n's top bits and shift it back up, so
		// the seed still fits an int64 when sqrt(n) is far larger.
		k := 0
		if bl := n.BitLen(); bl > 104 {
			k = (bl - 104) / 2
		}
		fp, _ := bigRsh(n, uint(2*k)).Float64()
		x = bigLsh(big.NewInt(int64(math.Sqrt(fp))), uint(k))
		if x.Sign() <= 0 {
			x = big.NewInt(1)
		}
	}

	for i := 0; i < 200; i++ {
		q := bigDiv(n, x)
		next := bigRsh(bigAdd(x, q), 1)
		if bigAbs(bigSub(next, x)).Cmp(big.NewInt(1)) <= 0 {
			// One more averaging step to settle on floor(sqrt(n)).
			x = next
			for x.Cmp(bigDiv(n, x)) > 0 {
				x = bigRsh(bigAdd(x, bigDiv(n, x)), 1)
			}
			return x
		}
		x = next
	}
	return x
}
