package unified

import (
	"math/big"
	"strings"

	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/property"
	"github.com/brooksby/realmath/pkg/rational"
)

// coeffTimesSymbol renders rat*symbol the way a calculator display would:
// the bare symbol when rat is +-1, "nSYMBOL" for an integer coefficient,
// and "SYMBOL/d" (numerator omitted when it's 1) for a fractional one.
func coeffTimesSymbol(rat *rational.BoundedRational, symbol string) string {
	one := rational.One()
	switch {
	case rat.CompareTo(one) == 0:
		return symbol
	case rat.Negate().CompareTo(one) == 0:
		return "-" + symbol
	}

	sign := ""
	n := rat.Num()
	if n.Sign() < 0 {
		sign = "-"
		n = new(big.Int).Abs(n)
	}
	d := rat.Denom()

	if d.Cmp(bigOne) == 0 {
		return sign + n.String() + symbol
	}
	if n.Cmp(bigOne) == 0 {
		return sign + symbol + "/" + d.String()
	}
	return sign + n.String() + symbol + "/" + d.String()
}

// ToDisplayString renders u per spec.md §4.5.6: the raw rational when u is
// exactly rational or zero, the symbolic form for a recognized Property,
// and otherwise a decimal constructive-real rendering.
func (u *Real) ToDisplayString(degrees, unicodeFraction, mixed bool) string {
	if u.rat.IsZero() {
		return "0"
	}
	if u.prop != nil && u.prop.IsOne() {
		return u.rat.DisplayString(unicodeFraction, mixed)
	}
	if sym := u.symbolicString(degrees); sym != "" {
		return sym
	}
	return decimalString(u.Constructive(), 10)
}

func (u *Real) symbolicString(degrees bool) string {
	if u.prop == nil {
		return ""
	}
	switch u.prop.Kind {
	case property.KindPi:
		return coeffTimesSymbol(u.rat, "π")
	case property.KindSqrt:
		return coeffTimesSymbol(u.rat, "√"+u.prop.Arg.String())
	case property.KindExp:
		return coeffTimesSymbol(u.rat, "exp("+u.prop.Arg.String()+")")
	case property.KindLn:
		return coeffTimesSymbol(u.rat, "ln("+u.prop.Arg.String()+")")
	case property.KindLog:
		return coeffTimesSymbol(u.rat, "log("+u.prop.Arg.String()+")")
	case property.KindSinPi:
		return coeffTimesSymbol(u.rat, "sin("+coeffTimesSymbol(u.prop.Arg, "π")+")")
	case property.KindTanPi:
		return coeffTimesSymbol(u.rat, "tan("+coeffTimesSymbol(u.prop.Arg, "π")+")")
	case property.KindAsin:
		return coeffTimesSymbol(u.rat, "sin⁻¹("+u.prop.Arg.String()+")")
	case property.KindAtan:
		body := "tan⁻¹(" + u.prop.Arg.String() + ")"
		if degrees {
			body += "×180/π"
		}
		return coeffTimesSymbol(u.rat, body)
	default:
		return ""
	}
}

// decimalString renders cr as a plain (non-scientific) decimal with the
// given number of significant digits.
func decimalString(cr constructive.Real, sigDigits int) string {
	rep, err := constructive.ToStringFloatRep(cr, sigDigits, 10, -64)
	if err != nil {
		return "0"
	}
	return stringFloatRepToPlain(rep)
}

func stringFloatRepToPlain(rep constructive.StringFloatRep) string {
	if rep.Sign == 0 {
		return "0"
	}
	sign := ""
	if rep.Sign < 0 {
		sign = "-"
	}
	mantissa, exp := rep.Mantissa, rep.Exponent

	var intPart, fracPart string
	switch {
	case exp <= 0:
		intPart = "0"
		fracPart = strings.Repeat("0", -exp) + mantissa
	case exp >= len(mantissa):
		intPart = mantissa + strings.Repeat("0", exp-len(mantissa))
		fracPart = ""
	default:
		intPart = mantissa[:exp]
		fracPart = mantissa[exp:]
	}
	if fracPart == "" {
		return sign + intPart
	}
	return sign + intPart + "." + fracPart
}

// ExactlyTruncatable reports whether u's value is known to be exactly
// rational or definitely irrational -- the two cases in which
// TruncatedString can safely truncate toward zero without a safety margin,
// since the value can never sit exactly on a decimal boundary by
// surprise.
func (u *Real) ExactlyTruncatable() bool {
	return u.prop != nil
}

// TruncatedString renders u with exactly n fractional decimal digits,
// truncated toward zero. When the value is not known to be exactly
// rational or definitely irrational, it approximates with extra guard
// digits first so the truncation itself cannot be thrown off by an
// imprecise approximation landing on the wrong side of a digit boundary.
func (u *Real) TruncatedString(n int) string {
	if u.prop != nil && u.prop.IsOne() {
		return u.rat.TruncatedString(n)
	}
	guard := 4
	if u.ExactlyTruncatable() {
		guard = 0
	}
	return crTruncatedString(u.Constructive(), n, guard)
}

func crTruncatedString(cr constructive.Real, n, guardDigits int) string {
	probe, err := constructive.ToStringFloatRep(cr, 1, 10, -64)
	if err != nil {
		return "0"
	}
	exponent := probe.Exponent
	if exponent < 0 {
		exponent = 0
	}
	prec := exponent + n + guardDigits + 1
	if prec < 1 {
		prec = 1
	}
	rep, err := constructive.ToStringFloatRep(cr, prec, 10, -64)
	if err != nil {
		return "0"
	}
	return truncateDecimalDigits(stringFloatRepToPlain(rep), n)
}

func truncateDecimalDigits(s string, n int) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if len(fracPart) < n {
		fracPart += strings.Repeat("0", n-len(fracPart))
	} else {
		fracPart = fracPart[:n]
	}
	out := intPart
	if n > 0 {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

var bigOne = big.NewInt(1)
