package unified

import (
	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/property"
	"github.com/brooksby/realmath/pkg/rational"
)

var halfRat = mustRat(1, 2)
var oneSixthRat = mustRat(1, 6)
var oneQuarterRat = mustRat(1, 4)
var oneThirdRat = mustRat(1, 3)

func mustRat(n, d int64) *rational.BoundedRational {
	r, err := rational.New64(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// sqrtTimes builds coeffNum/coeffDen * sqrt(radicand) directly, without
// going through Multiply, since both factors are already known exactly.
func sqrtTimes(radicand, coeffNum, coeffDen int64) *Real {
	p := property.Sqrt(rational.FromLong(radicand))
	coeff := mustRat(coeffNum, coeffDen)
	return New(coeff, propertyToCR(p), &p)
}

// sinPiTable looks up sin(pi*x) for x at one of spec.md §4.5.2's tabulated
// multiples of pi/12 -- 0, 30, 45, 60, 90 degrees -- returning nil when x
// is not one of them.
func sinPiTable(x *rational.BoundedRational) *Real {
	switch {
	case x.IsZero():
		return FromRational(rational.Zero())
	case x.CompareTo(oneSixthRat) == 0:
		return FromRational(halfRat)
	case x.CompareTo(oneQuarterRat) == 0:
		return sqrtTimes(2, 1, 2)
	case x.CompareTo(oneThirdRat) == 0:
		return sqrtTimes(3, 1, 2)
	case x.CompareTo(halfRat) == 0:
		return FromRational(rational.One())
	default:
		return nil
	}
}

func tanPiTable(x *rational.BoundedRational) (*Real, bool) {
	switch {
	case x.IsZero():
		return FromRational(rational.Zero()), true
	case x.CompareTo(oneSixthRat) == 0:
		return sqrtTimes(3, 1, 3), true
	case x.CompareTo(oneQuarterRat) == 0:
		return FromRational(rational.One()), true
	case x.CompareTo(oneThirdRat) == 0:
		return sqrtTimes(3, 1, 1), true
	case x.CompareTo(halfRat) == 0:
		return nil, false
	default:
		return nil, true
	}
}

// sinPiOf computes sin(pi*coeff), either as one of the tabulated exact
// values or, failing that, tagged with a canonical SINPI property.
func sinPiOf(coeff *rational.BoundedRational) *Real {
	p, negate, ok := property.MakeSinPiProperty(coeff)
	if !ok {
		return nil
	}
	if v := sinPiTable(p.Arg); v != nil {
		if negate {
			return v.Negate()
		}
		return v
	}
	if negate {
		return newRaw(rational.FromLong(-1), propertyToCR(p), &p)
	}
	return newRaw(rational.One(), propertyToCR(p), &p)
}

// Sin returns sin(u), using the exact pi/12 table whenever u is a rational
// multiple of pi, and falling back to the generic constructive sine
// otherwise.
func Sin(u *Real) *Real {
	if prop, ok := u.Property(); u.IsZero() || (ok && prop.Kind == property.KindPi) {
		if v := sinPiOf(u.rat); v != nil {
			return v
		}
	}
	return FromConstructive(constructive.Sine(u.Constructive()))
}

// Cos returns cos(u) via the identity cos(pi*x) = sin(pi*(x+1/2)), so it
// shares Sin's exact-table lookup.
func Cos(u *Real) *Real {
	if prop, ok := u.Property(); u.IsZero() || (ok && prop.Kind == property.KindPi) {
		if v := sinPiOf(u.rat.Add(halfRat)); v != nil {
			return v
		}
	}
	return FromConstructive(constructive.Cosine(u.Constructive()))
}

// Tan returns tan(u), panicking with ErrDomain at odd multiples of pi/2.
func Tan(u *Real) *Real {
	if prop, ok := u.Property(); u.IsZero() || (ok && prop.Kind == property.KindPi) {
		p, negate, ok := property.MakeTanPiProperty(u.rat)
		if ok {
			v, defined := tanPiTable(p.Arg)
			if !defined {
				panic(newDomainError("tan is undefined at an odd multiple of pi/2"))
			}
			if v != nil {
				if negate {
					return v.Negate()
				}
				return v
			}
			if negate {
				return newRaw(rational.FromLong(-1), propertyToCR(p), &p)
			}
			return newRaw(rational.One(), propertyToCR(p), &p)
		}
	}
	return FromConstructive(constructive.Tangent(u.Constructive()))
}

// Asin returns asin(u) for -1<=u<=1, using the exact values at 0, +-1/2,
// and +-1 directly, tagging anything else with an ASIN property. Only
// applies the rational fast path when u is known exactly rational (its
// Property is ONE); any other u falls back to the generic constructive
// asin.
func Asin(u *Real) *Real {
	if u.prop == nil || !u.prop.IsOne() {
		return FromConstructive(constructive.Asin(u.Constructive()))
	}
	r := u.rat
	one := rational.One()
	switch {
	case r.IsZero():
		return FromRational(rational.Zero())
	case r.CompareTo(one) == 0:
		return piFraction(1, 2)
	case r.Negate().CompareTo(one) == 0:
		return piFraction(-1, 2)
	case r.CompareTo(halfRat) == 0:
		return piFraction(1, 6)
	case r.Negate().CompareTo(halfRat) == 0:
		return piFraction(-1, 6)
	}
	if r.CompareTo(one) > 0 || r.Negate().CompareTo(one) > 0 {
		panic(newDomainError("asin argument must be in [-1, 1]"))
	}
	p := property.Asin(r)
	return New(rational.One(), propertyToCR(p), &p)
}

// Atan returns atan(u), using the exact values at 0, +-1 directly and
// tagging anything else with an ATAN property. Atan is defined for every
// real argument; only the rational fast path needs u's Property to be ONE.
func Atan(u *Real) *Real {
	if u.prop == nil || !u.prop.IsOne() {
		return FromConstructive(constructive.Arctan(u.Constructive()))
	}
	r := u.rat
	switch {
	case r.IsZero():
		return FromRational(rational.Zero())
	case r.CompareTo(rational.One()) == 0:
		return piFraction(1, 4)
	case r.Negate().CompareTo(rational.One()) == 0:
		return piFraction(-1, 4)
	}
	p := property.Atan(r)
	return New(rational.One(), propertyToCR(p), &p)
}

// piFraction builds n/d * pi directly.
func piFraction(n, d int64) *Real {
	coeff := mustRat(n, d)
	return newRaw(coeff, constructive.Pi(), &property.Pi)
}
