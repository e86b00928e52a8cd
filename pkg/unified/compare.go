package unified

import (
	"math/big"

	"github.com/brooksby/realmath/pkg/cancel"
	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/property"
	"github.com/brooksby/realmath/pkg/rational"
)

// IsComparable reports whether u and o are known to resolve to a definite
// sign without risking non-termination, following spec.md §4.5.4's case
// table: same CR factor, both rationals zero, a provable independence
// result, matching monotonic-kind properties on the same rational factor
// (or two SQRTs of the same rational sign), or (as a last resort) a CR
// comparison that actually resolves at a deep but bounded tolerance.
func (u *Real) IsComparable(o *Real) bool {
	switch {
	case u.sameSymbolicFactor(o):
		return true
	case u.rat.IsZero() && o.rat.IsZero():
		return true
	case property.DefinitelyIndependent(u.propOrIrrational(), o.propOrIrrational()) &&
		(hasFewLeadingZeros(u) || hasFewLeadingZeros(o)):
		return true
	case sameMonotonicKind(u, o):
		return true
	case bothSqrtSameSign(u, o):
		return true
	default:
		return constructive.CompareToTolerant(u.Constructive(), o.Constructive(), -1000, -3500) != 0
	}
}

// hasFewLeadingZeros reports whether u has at most 5000 leading binary
// zero bits, i.e. its magnitude exceeds 2^-5000: the guard spec.md
// §4.5.4 requires before trusting definite independence to decide
// comparability, since an operand that might be astronomically close to
// zero could still flip the sign of a sum with an independent term.
func hasFewLeadingZeros(u *Real) bool {
	if u.rat.IsZero() {
		return false
	}
	return constructive.Approximate(u.Constructive(), -5000).Sign() != 0
}

// sameMonotonicKind reports whether u and o carry the same Property kind
// over the same rational argument, tying the two CR factors together by a
// common monotonic function of one rational so their relative order
// follows directly from their rational coefficients' signs.
func sameMonotonicKind(u, o *Real) bool {
	if u.prop == nil || o.prop == nil {
		return false
	}
	if u.prop.Kind != o.prop.Kind {
		return false
	}
	switch u.prop.Kind {
	case property.KindLn, property.KindLog, property.KindAsin, property.KindAtan:
		return argsEqual(u.prop.Arg, o.prop.Arg)
	default:
		return false
	}
}

func bothSqrtSameSign(u, o *Real) bool {
	if u.prop == nil || o.prop == nil {
		return false
	}
	if u.prop.Kind != property.KindSqrt || o.prop.Kind != property.KindSqrt {
		return false
	}
	return u.rat.Sign() == o.rat.Sign()
}

func argsEqual(a, b *rational.BoundedRational) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.CompareTo(b) == 0
}

// CompareTo returns -1, 0, or 1 for u<o, u==o, u>o. It should only be
// called when IsComparable(o) is true; in the same-CR-factor and
// same-SQRT-sign cases it compares the rational coefficients directly
// (squaring first, via raw non-null-returning multiplication, in the
// SQRT case so the comparison never trips BoundedRational's size cutoff),
// and otherwise falls back to a bounded-tolerance CR comparison.
func (u *Real) CompareTo(o *Real) int {
	if u.sameSymbolicFactor(o) {
		return u.rat.CompareTo(o.rat)
	}
	if bothSqrtSameSign(u, o) {
		us := squaredSqrtValue(u)
		os := squaredSqrtValue(o)
		cmp := us.Cmp(os)
		if u.rat.Sign() < 0 {
			cmp = -cmp
		}
		return cmp
	}
	return u.CompareToPrecision(o, -100)
}

// squaredSqrtValue returns rat^2 * sqrt_arg for a SQRT-tagged value,
// computed with big.Rat multiplication directly rather than through
// BoundedRational's size-checked operators, matching spec.md §4.5.4's
// "raw (non-null-returning) multiplication" instruction.
func squaredSqrtValue(u *Real) *big.Rat {
	ratSq := u.rat.Rat()
	sq := new(big.Rat).Mul(ratSq, ratSq)
	arg := u.prop.Arg.Rat()
	sq.Mul(sq, arg)
	return sq
}

// CompareToPrecision compares u and o at precision start (a negative
// exponent), doubling the precision (each step finer) until the comparison
// resolves; once the precision is no longer valid it returns 0.
func (u *Real) CompareToPrecision(o *Real, start int) int {
	uc, oc := u.Constructive(), o.Constructive()
	for p := start; constructive.IsPrecisionValid(p); p *= 2 {
		cancel.CheckPanic()
		if r := constructive.PreciseCmp(uc, oc, p-1); r != 0 {
			return r
		}
	}
	return 0
}

// DefinitelyEquals reports whether u and o are provably equal: comparable
// and comparing equal.
func (u *Real) DefinitelyEquals(o *Real) bool {
	return u.IsComparable(o) && u.CompareTo(o) == 0
}

// Equals deliberately panics when called with a *Real argument: unified
// reals cannot, in general, decide equality, so accidental use of the
// regular equality protocol (e.g. via reflect.DeepEqual or a map key) is
// refused rather than silently returning a wrong or non-terminating
// answer. Use DefinitelyEquals when the comparable cases suffice.
func (u *Real) Equals(obj any) bool {
	if _, ok := obj.(*Real); ok {
		panic(newArithmeticError("unified.Real.Equals is not decidable; use DefinitelyEquals"))
	}
	return false
}
