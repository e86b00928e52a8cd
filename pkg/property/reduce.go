package property

import (
	"math/big"

	"github.com/brooksby/realmath/pkg/cancel"
	"github.com/brooksby/realmath/pkg/rational"
)

var half = func() *rational.BoundedRational {
	h, err := rational.New64(1, 2)
	if err != nil {
		panic(err)
	}
	return h
}()

// ReducedArg maps a (a multiple of pi) into [-1/2, 3/2) by subtracting
// the nearest even integer to floor(a + 1/2), so that SINPI/TANPI
// properties are always built from a canonical representative of a's
// residue class mod 2. Returns nil (and the caller falls back to the
// non-symbolic CR path) if BR arithmetic along the way overflows its
// size budget.
func ReducedArg(a *rational.BoundedRational) *rational.BoundedRational {
	if a == nil {
		return nil
	}
	shifted := a.Add(half)
	if shifted == nil {
		return nil
	}
	floor := shifted.Floor()

	even := new(big.Int).Set(floor)
	if even.Bit(0) == 1 {
		even.Sub(even, big.NewInt(1))
	}

	evenRat := rational.FromBigInt(even)
	return a.Subtract(evenRat)
}

// MakeSinPiProperty reflects a's reduced residue into the canonical
// (0, 1/2) argument range sin(pi*x) is tabulated for, returning the
// property together with whether the caller must negate its rational
// coefficient to compensate for the reflection.
func MakeSinPiProperty(a *rational.BoundedRational) (Property, bool, bool) {
	reduced := ReducedArg(a)
	if reduced == nil {
		return Property{}, false, false
	}

	negate := false
	x := reduced
	// sin(pi*x) for x in [-1/2, 3/2): reflect x > 1 via sin(pi*x) =
	// -sin(pi*(x-1)), then x < 0 via sin(pi*x) = -sin(-pi*x).
	one := rational.One()
	if x.CompareTo(one) > 0 {
		x = x.Subtract(one)
		negate = !negate
	}
	if x.Sign() < 0 {
		x = x.Negate()
		negate = !negate
	}
	if x.CompareTo(half) > 0 {
		x = one.Subtract(x)
	}

	return Make(KindSinPi, x), negate, true
}

// MakeTanPiProperty is MakeSinPiProperty's analogue for tan(pi*x), whose
// period is 1 rather than 2: it reflects into (0, 1/2) using tan's odd
// symmetry and pi-periodicity.
func MakeTanPiProperty(a *rational.BoundedRational) (Property, bool, bool) {
	reduced := ReducedArg(a)
	if reduced == nil {
		return Property{}, false, false
	}

	negate := false
	x := reduced
	one := rational.One()
	if x.CompareTo(one) >= 0 {
		x = x.Subtract(one)
	}
	if x.Sign() < 0 {
		x = x.Negate()
		negate = !negate
	}
	if x.CompareTo(half) > 0 {
		x = one.Subtract(x)
		negate = !negate
	}

	return Make(KindTanPi, x), negate, true
}

// CommonPower reports, when x and y are both positive integers related by
// x^m = y^n for some positive integers m, n, the rational m/n - computed
// by repeatedly dividing the larger by the smaller and accumulating the
// quotient exponent, the integer analogue of a continued-fraction gcd.
// Returns nil when no such relation is found.
func CommonPower(x, y *big.Int) *rational.BoundedRational {
	if x == nil || y == nil || x.Sign() <= 0 || y.Sign() <= 0 {
		return nil
	}

	a, b := new(big.Int).Set(x), new(big.Int).Set(y)
	expA, expB := big.NewInt(1), big.NewInt(1)

	for i := 0; i < 200; i++ {
		cancel.CheckPanic()

		if a.Cmp(b) == 0 {
			return rational.FromRat(new(big.Rat).SetFrac(expB, expA))
		}
		if a.Cmp(b) < 0 {
			a, b = b, a
			expA, expB = expB, expA
		}
		// a > b: find k with a = b^k * r, exactly, for increasing k.
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		if r.Sign() != 0 {
			return nil
		}
		a = q
		expA = new(big.Int).Add(expA, expB)
	}
	return nil
}

// DefinitelyIndependent reports whether the CR factors named by a and b
// are, by a provable closed-form identity, irrational nonzero multiples
// of each other - so a unified real combining them can never turn out to
// be rational after all and comparisons stay decidable. It follows the
// spec's symmetric case table keyed on the sorted pair of kinds.
func DefinitelyIndependent(a, b Property) bool {
	// Normalize ordering so the switch only needs to handle each
	// unordered pair once.
	if a.Kind > b.Kind {
		a, b = b, a
	}

	switch {
	case a.Kind == KindOne && b.Kind == KindOne:
		return false
	case a.Kind == KindOne:
		return isIrrational(b)
	case a.Kind == KindPi && b.Kind == KindSqrt:
		return true
	case a.Kind == KindSqrt && b.Kind == KindSqrt:
		return inIrreducibleRange(a.Arg) && inIrreducibleRange(b.Arg) && a.Arg.CompareTo(b.Arg) != 0
	case a.Kind == KindExp && b.Kind == KindExp:
		return a.Arg.CompareTo(b.Arg) != 0
	case a.Kind == KindExp && b.Kind == KindLn:
		return true
	case a.Kind == KindExp && isAlgebraicKind(b.Kind):
		return true
	case a.Kind == KindLn && b.Kind == KindLn:
		return CommonPower(safeNum(a.Arg), safeNum(b.Arg)) == nil
	case a.Kind == KindLn && isAlgebraicKind(b.Kind):
		return true
	case a.Kind == KindLog && b.Kind == KindLog:
		return CommonPower(safeNum(a.Arg), safeNum(b.Arg)) == nil
	case (a.Kind == KindSinPi || a.Kind == KindTanPi) && b.Kind.isTranscendentalFamily() && b.Kind != a.Kind:
		return true
	case a.Kind == KindAsin && isAlgebraicKind(b.Kind):
		return true
	case a.Kind == KindAtan && b.Kind == KindIrrational:
		return false
	default:
		return false
	}
}

func isAlgebraicKind(k Kind) bool {
	return k == KindOne || k == KindSqrt
}

func isIrrational(p Property) bool {
	return p.Kind != KindOne
}

// inIrreducibleRange reports whether arg, as a SQRT argument, is positive
// with a numerator and denominator that are each at most 43 and have no
// perfect-square factor (rational.ExtractSquare finds none).
func inIrreducibleRange(arg *rational.BoundedRational) bool {
	if arg == nil || arg.IsNull() || arg.Sign() <= 0 {
		return false
	}
	limit := big.NewInt(43)
	r := arg.Rat()
	for _, v := range []*big.Int{r.Num(), r.Denom()} {
		if v.Cmp(limit) > 0 {
			return false
		}
		if p, _ := rational.ExtractSquare(v); p.Cmp(big.NewInt(1)) != 0 {
			return false
		}
	}
	return true
}

func safeNum(arg *rational.BoundedRational) *big.Int {
	if arg == nil || arg.IsNull() {
		return nil
	}
	return arg.Num()
}
