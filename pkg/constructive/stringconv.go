package constructive

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// StringFloatRep is the decomposed scientific-notation form of a Real:
// sign * 0.mantissa * radix^exponent, with mantissa holding exactly prec
// digits (or "0" when sign is zero).
type StringFloatRep struct {
	Sign     int
	Mantissa string
	Radix    int
	Exponent int
}

// String renders the [-]mantissa E exponent (radix R) textual form, with
// the radix suffix omitted for base 10.
func (s StringFloatRep) String() string {
	if s.Sign == 0 {
		return "0"
	}
	sign := ""
	if s.Sign < 0 {
		sign = "-"
	}
	out := fmt.Sprintf("%s%sE%d", sign, s.Mantissa, s.Exponent)
	if s.Radix != 10 {
		out += fmt.Sprintf(" (radix %d)", s.Radix)
	}
	return out
}

// ToStringFloatRep produces a StringFloatRep with a mantissa of exactly
// prec digits in the given radix, refining msd to at least minPrec first.
// Ported from the refine-then-shorten shape Boehm's CR.toStringFloatRep
// uses: once the mantissa comes up short (typically because msd was
// overestimated by one digit) the exponent is walked down and the
// approximation redone, rather than zero-padding.
func ToStringFloatRep(c Real, prec, radix, minPrec int) (StringFloatRep, error) {
	if prec <= 0 {
		return StringFloatRep{}, newArithmeticError("ToStringFloatRep: prec must be positive")
	}

	msd := refineMSD(c, minPrec)
	if msd == math.MinInt {
		return StringFloatRep{Sign: 0, Mantissa: "0", Radix: radix}, nil
	}

	log2Radix := math.Log2(float64(radix))
	exponent := int(math.Ceil(float64(msd+1) / log2Radix))

	// digitsAt returns c * radix^(prec-exp), rounded to an integer.
	radixBig := big.NewInt(int64(radix))
	digitsAt := func(exp int) *big.Int {
		if k := prec - exp; k >= 0 {
			return Approximate(Multiply(c, newInteger(bigExp(radixBig, big.NewInt(int64(k)), nil))), 0)
		}
		return Approximate(Divide(c, newInteger(bigExp(radixBig, big.NewInt(int64(exp-prec)), nil))), 0)
	}

	appr := digitsAt(exponent)
	mantissa := bigAbs(appr).Text(radix)
	for len(mantissa) < prec {
		exponent--
		appr = digitsAt(exponent)
		mantissa = bigAbs(appr).Text(radix)
	}
	if len(mantissa) > prec {
		mantissa = mantissa[:prec]
	}

	return StringFloatRep{Sign: appr.Sign(), Mantissa: mantissa, Radix: radix, Exponent: exponent}, nil
}

// FromString parses an optionally-signed, optionally-fractional literal in
// the given radix into a Real, as integer_form / radix^fraction_len.
func FromString(s string, radix int) (Real, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, newArithmeticError("FromString: empty input")
	}

	sign := 1
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	digits := intPart + fracPart
	if digits == "" {
		return nil, newArithmeticError("FromString: no digits")
	}

	n, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return nil, newArithmeticError(fmt.Sprintf("FromString: invalid digits %q for radix %d", digits, radix))
	}
	if sign < 0 {
		n = bigNeg(n)
	}

	value := newInteger(n)
	if len(fracPart) > 0 {
		denom := bigExp(big.NewInt(int64(radix)), big.NewInt(int64(len(fracPart))), nil)
		value = Divide(value, newInteger(denom))
	}
	return value, nil
}

// DoubleValue converts c to the nearest float64. It evaluates at precision
// msd-60 (60 bits beyond the leading digit is ample for float64's 52-bit
// mantissa) and reassembles via math.Ldexp, the inverse of the bit layout
// FromFloat64 unpacks; Ldexp handles subnormal post-scaling the same way
// the spec's explicit exponent-adjustment step does.
func DoubleValue(c Real) float64 {
	msd := refineMSD(c, -1000)
	if msd == math.MinInt {
		return 0
	}
	p := msd - 60
	appr := Approximate(c, p)
	f, _ := appr.Float64()
	return math.Ldexp(f, p)
}
