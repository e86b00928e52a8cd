package unified

import (
	"sync"

	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/property"
	"github.com/brooksby/realmath/pkg/rational"
)

// Zero is the interned constant 0.
var Zero = sync.OnceValue(func() *Real {
	return FromRational(rational.Zero())
})

// One is the interned constant 1.
var One = sync.OnceValue(func() *Real {
	return FromRational(rational.One())
})

// Two is the interned constant 2.
var Two = sync.OnceValue(func() *Real {
	return FromRational(rational.Two())
})

// Ten is the interned constant 10.
var Ten = sync.OnceValue(func() *Real {
	return FromRational(rational.Ten())
})

// Half is the interned constant 1/2.
var Half = sync.OnceValue(func() *Real {
	return FromRational(halfRat)
})

// NegativeOne is the interned constant -1.
var NegativeOne = sync.OnceValue(func() *Real {
	return FromRational(rational.FromLong(-1))
})

// E is Euler's number, tagged EXP(1) so it participates in the exp/ln
// symbolic normalization rules exactly like any other computed exp(1).
var E = sync.OnceValue(func() *Real {
	return FromProperty(property.Exp(rational.One()))
})

// Pi is the circle constant, tagged PI.
var Pi = sync.OnceValue(func() *Real {
	return FromProperty(property.Pi)
})

// Phi is the golden ratio (1+sqrt(5))/2. It has no single-Property closed
// form in this algebra, so it carries its constructive value directly
// with no symbolic tag.
var Phi = sync.OnceValue(func() *Real {
	return FromConstructive(constructive.Phi())
})

// Sqrt2 is sqrt(2), tagged SQRT(2).
var Sqrt2 = sync.OnceValue(func() *Real {
	return FromProperty(property.Sqrt(rational.Two()))
})

// Ln2 is ln(2), tagged LN(2).
var Ln2 = sync.OnceValue(func() *Real {
	return FromProperty(property.Ln(rational.Two()))
})
