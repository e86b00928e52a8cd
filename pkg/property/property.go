// Package property implements the symbolic Property tag pkg/unified
// attaches to a unified real's constructive-real factor: a small closed
// sum of "this CR is known to equal f(rational arg)" facts (pi, a square
// root, an exponential, a logarithm, an inverse trig value, or simply
// "irrational, cause unknown") that make some comparisons between unified
// reals decidable without ever approximating the underlying CR.
package property

import (
	"fmt"

	"github.com/brooksby/realmath/pkg/rational"
)

// Kind identifies which closed form a Property names.
type Kind int

const (
	// KindOne marks "no interesting property" - the CR factor is
	// (indistinguishable from) the constant 1.
	KindOne Kind = iota
	KindPi
	KindSqrt
	KindExp
	KindLn
	KindLog
	KindSinPi
	KindTanPi
	KindAsin
	KindAtan
	// KindIrrational marks a CR known to be irrational for some reason
	// other than one of the closed forms above (e.g. produced by a
	// generic MonotoneDerivative/InverseIncreasing call).
	KindIrrational
)

func (k Kind) String() string {
	switch k {
	case KindOne:
		return "ONE"
	case KindPi:
		return "PI"
	case KindSqrt:
		return "SQRT"
	case KindExp:
		return "EXP"
	case KindLn:
		return "LN"
	case KindLog:
		return "LOG"
	case KindSinPi:
		return "SINPI"
	case KindTanPi:
		return "TANPI"
	case KindAsin:
		return "ASIN"
	case KindAtan:
		return "ATAN"
	case KindIrrational:
		return "IRRATIONAL"
	default:
		return "UNKNOWN"
	}
}

// Property is Kind plus the rational argument the closed form is taken
// of; Arg is nil for the argument-free kinds (ONE, PI, IRRATIONAL).
type Property struct {
	Kind Kind
	Arg  *rational.BoundedRational
}

// One is the property of the constant 1.
var One = Property{Kind: KindOne}

// Pi is the property of pi itself.
var Pi = Property{Kind: KindPi}

// Irrational marks a CR known to be irrational without a more specific
// closed form.
var Irrational = Property{Kind: KindIrrational}

// IsOne reports whether p names the trivial property.
func (p Property) IsOne() bool { return p.Kind == KindOne }

// Make builds a Property for kind and arg, normalizing degenerate
// arguments back to ONE per the spec's make_property table: SQRT(1) and
// EXP(0) both collapse to ONE, matching kind=ONE itself.
func Make(kind Kind, arg *rational.BoundedRational) Property {
	switch kind {
	case KindOne, KindPi, KindIrrational:
		return Property{Kind: kind}
	case KindSqrt:
		if arg != nil && arg.CompareTo(rational.One()) == 0 {
			return One
		}
	case KindExp:
		if arg != nil && arg.IsZero() {
			return One
		}
	}
	return Property{Kind: kind, Arg: arg}
}

// Sqrt builds SQRT(arg), normalizing SQRT(1) to ONE.
func Sqrt(arg *rational.BoundedRational) Property { return Make(KindSqrt, arg) }

// Exp builds EXP(arg), normalizing EXP(0) to ONE.
func Exp(arg *rational.BoundedRational) Property { return Make(KindExp, arg) }

// Ln builds LN(arg).
func Ln(arg *rational.BoundedRational) Property { return Make(KindLn, arg) }

// Log builds LOG(arg) (base-10 logarithm).
func Log(arg *rational.BoundedRational) Property { return Make(KindLog, arg) }

// Asin builds ASIN(arg).
func Asin(arg *rational.BoundedRational) Property { return Make(KindAsin, arg) }

// Atan builds ATAN(arg).
func Atan(arg *rational.BoundedRational) Property { return Make(KindAtan, arg) }

// String renders a human-readable form, mostly useful for debugging; the
// presentation forms pkg/unified's display code uses are built directly
// from Kind/Arg rather than by parsing this.
func (p Property) String() string {
	if p.Arg == nil {
		return p.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", p.Kind, p.Arg)
}

// isTranscendentalFamily reports the kinds the independence table treats as
// "known transcendental given a nonzero algebraic argument" by
// Lindemann-Weierstrass (EXP) or by definition (PI).
func (k Kind) isTranscendentalFamily() bool {
	switch k {
	case KindPi, KindExp, KindLn, KindLog, KindSinPi, KindTanPi, KindAsin, KindAtan, KindIrrational:
		return true
	default:
		return false
	}
}
