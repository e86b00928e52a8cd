// Package unified implements the unified real (UR) type: a hybrid value
// `rat * cr` where rat is a bounded rational and cr is a constructive real,
// optionally tagged with a symbolic Property that lets a useful sub-algebra
// of values compare and display exactly instead of falling back to a
// bounded numeric approximation.
package unified

import (
	"sync"

	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/property"
	"github.com/brooksby/realmath/pkg/rational"
)

// Real is rat * cr, with prop (when non-nil) describing cr exactly for any
// Kind other than IRRATIONAL. rat is never the BoundedRational null state:
// any operation that would produce one already has a non-null fallback, the
// same way pkg/rational itself never lets an integer result go null.
type Real struct {
	rat  *rational.BoundedRational
	cr   constructive.Real
	prop *property.Property
}

// newRaw is the common internal constructor: it fills in the One()
// defaults the same way pkg/rational's maybeReduce guarantees an integer
// result is never null.
func newRaw(rat *rational.BoundedRational, cr constructive.Real, prop *property.Property) *Real {
	if rat == nil || rat.IsNull() {
		rat = rational.One()
	}
	if cr == nil {
		cr = constructive.One()
	}
	return &Real{rat: rat, cr: cr, prop: prop}
}

// FromRational builds a purely rational unified real: cr is One, and the
// property is the trivial ONE tag.
func FromRational(r *rational.BoundedRational) *Real {
	return newRaw(r, constructive.One(), &property.One)
}

// FromInt64 is a convenience wrapper around FromRational for an integer
// value.
func FromInt64(n int64) *Real {
	return FromRational(rational.FromLong(n))
}

// FromConstructive wraps an arbitrary constructive real with rational
// coefficient one and no known symbolic property: the generic fallback
// path every symbolic rewrite eventually bottoms out at.
func FromConstructive(cr constructive.Real) *Real {
	return newRaw(rational.One(), cr, nil)
}

// New builds rat*cr directly, with prop (if non-nil) asserted by the
// caller to describe cr exactly (for any Kind but IRRATIONAL). This is the
// low-level constructor symbolic rewrite rules use once they already know
// both the Property and the constructive value it corresponds to.
func New(rat *rational.BoundedRational, cr constructive.Real, prop *property.Property) *Real {
	return newRaw(rat, cr, prop)
}

// FromProperty builds One() * propertyToCR(p), deriving cr from the
// Property the way the spec's "convenience constructors derive cr from
// prop when it is deterministic" describes. Only legal for kinds other
// than IRRATIONAL, which has no canonical CR of its own.
func FromProperty(p property.Property) *Real {
	if p.Kind == property.KindIrrational {
		panic("unified: FromProperty cannot derive a CR for IRRATIONAL")
	}
	return newRaw(rational.One(), propertyToCR(p), &p)
}

var ln10Once = sync.OnceValue(func() constructive.Real {
	return constructive.Ln(constructive.Ten())
})

// ln10 is log_e(10), used both by propertyToCR(LOG) and by Log's own
// normal-case division.
func ln10() constructive.Real { return ln10Once() }

// propertyToCR computes the canonical constructive real a Property names,
// per spec.md §4.5.1's recognized immediate properties plus the general
// construction rule "prop determines cr exactly" for every other kind.
func propertyToCR(p property.Property) constructive.Real {
	switch p.Kind {
	case property.KindOne:
		return constructive.One()
	case property.KindPi:
		return constructive.Pi()
	case property.KindSqrt:
		return constructive.Sqrt(p.Arg.Constructive())
	case property.KindExp:
		return constructive.Exp(p.Arg.Constructive())
	case property.KindLn:
		return constructive.Ln(p.Arg.Constructive())
	case property.KindLog:
		return constructive.Divide(constructive.Ln(p.Arg.Constructive()), ln10())
	case property.KindSinPi:
		return constructive.Sine(constructive.Multiply(constructive.Pi(), p.Arg.Constructive()))
	case property.KindTanPi:
		return constructive.Tangent(constructive.Multiply(constructive.Pi(), p.Arg.Constructive()))
	case property.KindAsin:
		return constructive.Asin(p.Arg.Constructive())
	case property.KindAtan:
		return constructive.Arctan(p.Arg.Constructive())
	default:
		panic("unified: propertyToCR: no canonical CR for IRRATIONAL")
	}
}

// Constructive returns the full constructive-real expansion rat*cr, for
// callers (display, the CR-fallback comparison path) that need an actual
// approximable value rather than the symbolic pair.
func (u *Real) Constructive() constructive.Real {
	return constructive.Multiply(u.rat.Constructive(), u.cr)
}

// Property returns u's symbolic tag and whether one is known. When ok is
// false, u's value is known only as a bounded approximation.
func (u *Real) Property() (property.Property, bool) {
	if u.prop == nil {
		return property.Property{}, false
	}
	return *u.prop, true
}

// propOrIrrational returns u's Property, defaulting to the generic
// IRRATIONAL marker when none is recorded -- the independence table's
// catch-all case for "unknown, assume no special relationship".
func (u *Real) propOrIrrational() property.Property {
	if u.prop == nil {
		return property.Irrational
	}
	return *u.prop
}

// sameSymbolicFactor reports whether u and o are known to carry the exact
// same CR factor: either their Properties match structurally (same Kind,
// equal Arg), or -- for values with no recorded Property or with an
// IRRATIONAL one, which names no particular CR, e.g. two references to the
// same named singleton -- their cr fields are the same interface value.
// This is the test spec.md's "same-CR adds merge the rationals" and "same
// CR factor and nonzero" comparability rule use.
func (u *Real) sameSymbolicFactor(o *Real) bool {
	if u.prop != nil && o.prop != nil {
		if u.prop.Kind == property.KindIrrational || o.prop.Kind == property.KindIrrational {
			return u.cr == o.cr
		}
		return propertyEqual(*u.prop, *o.prop)
	}
	if u.prop == nil && o.prop == nil {
		return u.cr == o.cr
	}
	return false
}

func propertyEqual(a, b property.Property) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Arg == nil || b.Arg == nil {
		return a.Arg == b.Arg
	}
	return a.Arg.CompareTo(b.Arg) == 0
}

// IsZero reports whether u is exactly zero. Only the rational coefficient
// can certify this: a constructive real can only be approximated, never
// decided to be exactly zero, except in the trivial case rat==0.
func (u *Real) IsZero() bool {
	return u.rat.IsZero()
}

// Rat returns u's rational coefficient.
func (u *Real) Rat() *rational.BoundedRational { return u.rat }

// Add returns u+o. Same-factor operands merge their rational coefficients
// directly; otherwise Add checks the ln(r)+ln(s) product rewrite before
// falling back to a generic constructive-real sum (spec.md §4.5.2).
func (u *Real) Add(o *Real) *Real {
	if u.sameSymbolicFactor(o) {
		return newRaw(u.rat.Add(o.rat), u.cr, u.prop)
	}
	if o.IsZero() {
		return u
	}
	if u.IsZero() {
		return o
	}
	if sum := addLogs(u, o); sum != nil {
		return sum
	}
	return FromConstructive(constructive.Add(u.Constructive(), o.Constructive()))
}

// addLogs implements a*ln(r) + c*ln(s) = ln(r^a * s^c) when both rational
// coefficients are integers and the predicted argument bit length stays
// within budget, per spec.md §4.5.2's sum rule. Returns nil when the
// rewrite does not apply, so the caller falls back to a plain CR sum.
func addLogs(u, o *Real) *Real {
	if u.prop == nil || o.prop == nil {
		return nil
	}
	if u.prop.Kind != property.KindLn || o.prop.Kind != property.KindLn {
		return nil
	}
	a, err := u.rat.BigInt()
	if err != nil {
		return nil
	}
	c, err := o.rat.BigInt()
	if err != nil {
		return nil
	}

	estimatedBits := int64(u.prop.Arg.Num().BitLen()) * intAbs(a.Int64())
	estimatedBits += int64(o.prop.Arg.Num().BitLen()) * intAbs(c.Int64())
	if estimatedBits > 2000 {
		return nil
	}

	rPow := u.prop.Arg.PowInt(a)
	sPow := o.prop.Arg.PowInt(c)
	if rPow == nil || sPow == nil {
		return nil
	}
	product := rPow.Multiply(sPow)
	if product == nil || product.Sign() <= 0 {
		return nil
	}
	return Ln(FromRational(product))
}

func intAbs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Subtract returns u-o.
func (u *Real) Subtract(o *Real) *Real {
	return u.Add(o.Negate())
}

// Negate returns -u.
func (u *Real) Negate() *Real {
	return newRaw(u.rat.Negate(), u.cr, u.prop)
}

// Multiply returns u*o, applying the symbolic product rewrites of
// spec.md §4.5.2 (sqrt*sqrt, exp*exp, multiplying by ONE) before falling
// back to a generic constructive-real product.
func (u *Real) Multiply(o *Real) *Real {
	if u.IsZero() || o.IsZero() {
		return FromRational(rational.Zero())
	}
	if u.propOrIrrational().IsOne() {
		return newRaw(u.rat.Multiply(o.rat), o.cr, o.prop)
	}
	if o.propOrIrrational().IsOne() {
		return newRaw(u.rat.Multiply(o.rat), u.cr, u.prop)
	}

	if u.prop != nil && o.prop != nil {
		switch {
		case u.prop.Kind == property.KindSqrt && o.prop.Kind == property.KindSqrt:
			if prod := u.prop.Arg.Multiply(o.prop.Arg); prod != nil && prod.Sign() > 0 {
				coeff, arg := extractSquareRat(prod)
				sq := property.Sqrt(arg)
				newRat := u.rat.Multiply(o.rat).Multiply(coeff)
				return newRaw(newRat, propertyToCR(sq), &sq)
			}
		case u.prop.Kind == property.KindExp && o.prop.Kind == property.KindExp:
			sum := u.prop.Arg.Add(o.prop.Arg)
			if sum != nil {
				e := property.Exp(sum)
				return newRaw(u.rat.Multiply(o.rat), propertyToCR(e), &e)
			}
		}
	}

	return FromConstructive(constructive.Multiply(u.Constructive(), o.Constructive()))
}

// Divide returns u/o via u * o.Inverse().
func (u *Real) Divide(o *Real) *Real {
	return u.Multiply(o.Inverse())
}

// Inverse returns 1/u, applying the sqrt and exp inverse rewrites of
// spec.md §4.5.2.
func (u *Real) Inverse() *Real {
	if u.prop != nil {
		switch u.prop.Kind {
		case property.KindSqrt:
			// 1/(r*sqrt(n)) = sqrt(n)/(r*n): multiply the rational
			// coefficient's inverse by 1/n and keep the same sqrt factor.
			if n, err := u.prop.Arg.BigInt(); err == nil {
				ratInv, err := u.rat.Inverse()
				if err == nil {
					nRat := rational.FromBigInt(n)
					if scaled, err := ratInv.Divide(nRat); err == nil && scaled != nil {
						return newRaw(scaled, u.cr, u.prop)
					}
				}
			}
		case property.KindExp:
			ratInv, err := u.rat.Inverse()
			if err == nil {
				neg := property.Exp(u.prop.Arg.Negate())
				return newRaw(ratInv, propertyToCR(neg), &neg)
			}
		}
	}
	ratInv, err := u.rat.Inverse()
	if err != nil {
		panic(newDivideByZeroError())
	}
	return newRaw(ratInv, constructive.Inverse(u.cr), invertedProp(u.prop))
}

// invertedProp returns the Property describing 1/cr when cr's own
// Property is known and happens to be self-inverse under negation-free
// kinds (PI, SQRT, ONE all keep their shape under inversion only in the
// cases handled explicitly above); for every other kind the inverse's
// shape is not one of the eleven closed forms, so the result degrades to
// "known irrational, cause unknown" when the input was non-trivial.
func invertedProp(p *property.Property) *property.Property {
	if p == nil {
		return nil
	}
	if p.IsOne() {
		return &property.One
	}
	return &property.Irrational
}

// ShiftLeft returns u*2^n, applied to the rational coefficient via
// repeated doubling/halving through BoundedRational's own arithmetic so
// the MaxSize budget is honored the same way every other BoundedRational
// operation already enforces it.
func (u *Real) ShiftLeft(n int) *Real {
	return newRaw(shiftRat(u.rat, n), u.cr, u.prop)
}

// ShiftRight returns u*2^-n.
func (u *Real) ShiftRight(n int) *Real {
	return u.ShiftLeft(-n)
}

func shiftRat(r *rational.BoundedRational, n int) *rational.BoundedRational {
	two := rational.Two()
	if n >= 0 {
		for i := 0; i < n; i++ {
			r = r.Multiply(two)
		}
		return r
	}
	for i := 0; i < -n; i++ {
		next, err := r.Divide(two)
		if err != nil || next == nil {
			return r
		}
		r = next
	}
	return r
}
