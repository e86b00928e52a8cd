package constructive

import (
	"math"
	"math/big"

	"github.com/brooksby/realmath/pkg/cancel"
)

// sloppyCmp compares two scaled-integer approximations the way spec.md's
// GLOSSARY defines "sloppy compare": a difference of magnitude <= 1 is
// treated as equality. Used by InverseIncreasing's domain check and by its
// bracket updates.
func sloppyCmp(a, b *big.Int) int {
	d := bigSub(a, b)
	if bigAbs(d).Cmp(big.NewInt(1)) <= 0 {
		return 0
	}
	if d.Sign() < 0 {
		return -1
	}
	return 1
}

type monotoneInverse struct {
	precisionTracker
	f      func(Real) Real
	lo, hi Real
	arg    Real
}

// InverseIncreasing solves f(x) = arg for x in the open interval (lo, hi),
// where f is monotone increasing on that interval. It implements spec.md
// §4.3's combined bisection/secant solver: fails with a Domain error when
// arg falls outside [f(lo), f(hi)] (using a sloppy compare).
func InverseIncreasing(f func(Real) Real, lo, hi, arg Real) Real {
	return &monotoneInverse{f: f, lo: lo, hi: hi, arg: arg}
}

func (c *monotoneInverse) approximate(p int) *big.Int {
	extra := 20
	wp := p - extra // working precision: extra bits ahead of the target

	flo := c.f(c.lo)
	fhi := c.f(c.hi)

	for {
		cancel.CheckPanic()

		aLo := Approximate(c.lo, wp)
		aHi := Approximate(c.hi, wp)
		aFlo := Approximate(flo, wp)
		aFhi := Approximate(fhi, wp)
		aArg := Approximate(c.arg, wp)

		if sloppyCmp(aArg, aFlo) < 0 || sloppyCmp(aArg, aFhi) > 0 {
			panic(newDomainError("InverseIncreasing: argument outside [f(lo), f(hi)]"))
		}

		a, b := aLo, aHi
		fa, fb := aFlo, aFhi

		deficit := 0
		widthLimit := big.NewInt(6)

		for i := 0; i < 10_000; i++ {
			cancel.CheckPanic()

			width := bigSub(b, a)
			if width.Cmp(widthLimit) <= 0 {
				mid := scale(bigAdd(a, b), -1)
				return scale(mid, wp-p)
			}

			// Attempt a secant step; fall back to bisection when the
			// function is too flat locally (fb == fa) or when too many
			// consecutive secant steps have failed to shrink the
			// interval to at most a quarter of its width (the
			// "binary-step deficit").
			var cand *big.Int
			denom := bigSub(fb, fa)
			if denom.Sign() != 0 && deficit < 4 {
				num := bigMul(width, bigSub(aArg, fa))
				cand = bigAdd(a, bigDiv(num, denom))
				if cand.Cmp(a) <= 0 || cand.Cmp(b) >= 0 {
					cand = nil
				}
			}
			if cand == nil {
				cand = scale(bigAdd(a, b), -1)
			}

			candReal := fromScaled(cand, wp)
			fcand := Approximate(c.f(candReal), wp)

			switch sloppyCmp(fcand, aArg) {
			case 0:
				return scale(cand, wp-p)
			case -1:
				newWidth := bigSub(b, cand)
				if newWidth.Mul(newWidth, big.NewInt(4)).Cmp(width) > 0 {
					deficit++
				} else {
					deficit = 0
				}
				a, fa = cand, fcand
			default:
				newWidth := bigSub(cand, a)
				if newWidth.Mul(newWidth, big.NewInt(4)).Cmp(width) > 0 {
					deficit++
				} else {
					deficit = 0
				}
				b, fb = cand, fcand
			}
		}

		// The bracket refused to converge at this working precision
		// (the derivative varies too much locally); raise precision and
		// restart from the original bounds.
		extra += 20
		wp = p - extra
	}
}

func (c *monotoneInverse) asConstruction() string {
	return "InverseIncreasing(f, arg)"
}

// fromScaled wraps a scaled-integer approximation already known at
// precision p as a Real, so it can be handed back into f without forcing
// another approximate() call at a different precision.
func fromScaled(v *big.Int, p int) Real {
	return ShiftLeft(newInteger(v), p)
}

type monotoneDerivative struct {
	precisionTracker
	f      func(Real) Real
	lo, hi Real
	x      Real
}

// MonotoneDerivative numerically differentiates the monotone function f at
// x, which must lie strictly inside (lo, hi). It evaluates the forward and
// backward difference quotients at successively finer step sizes until they
// agree within 8 ulps and returns the forward quotient, per spec.md §4.3.
func MonotoneDerivative(f func(Real) Real, lo, hi, x Real) Real {
	return &monotoneDerivative{f: f, lo: lo, hi: hi, x: x}
}

func (c *monotoneDerivative) approximate(p int) *big.Int {
	if PreciseCmp(c.x, c.lo, p-2) <= 0 || PreciseCmp(c.x, c.hi, p-2) >= 0 {
		panic(newArithmeticError("MonotoneDerivative: x outside (lo, hi)"))
	}

	// deltaExp is the exponent of the step size delta = 2^deltaExp; it
	// starts 10 bits finer than p and is made more negative (finer) each
	// retry.
	deltaExp := p - 10
	for iter := 0; iter < 60; iter++ {
		cancel.CheckPanic()

		delta := ShiftLeft(One(), deltaExp)
		xPlus := Add(c.x, delta)
		xMinus := Subtract(c.x, delta)

		fwd := ShiftLeft(Subtract(c.f(xPlus), c.f(c.x)), -deltaExp)
		bwd := ShiftLeft(Subtract(c.f(c.x), c.f(xMinus)), -deltaExp)

		evalPrec := p - 4
		afwd := Approximate(fwd, evalPrec)
		abwd := Approximate(bwd, evalPrec)

		diff := bigAbs(bigSub(afwd, abwd))
		if diff.Cmp(big.NewInt(8)) <= 0 {
			return scale(afwd, evalPrec-p)
		}

		deltaExp -= boundLog2(int(math.Max(1, float64(diff.BitLen()))))
	}

	panic(newArithmeticError("MonotoneDerivative: failed to converge"))
}

func (c *monotoneDerivative) asConstruction() string {
	return "MonotoneDerivative(f, x)"
}
