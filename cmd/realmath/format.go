package main

import (
	"github.com/brooksby/realmath/pkg/constructive"
	"github.com/brooksby/realmath/pkg/property"
	"github.com/brooksby/realmath/pkg/unified"
)

// formatResult renders u for display: the exact rational or symbolic form
// when one is known (always base 10 -- the underlying display helpers in
// pkg/rational and pkg/unified are decimal-only), and otherwise a decimal
// or radix-converted approximation good to opts.precision digits.
func formatResult(u *unified.Real, opts *options) string {
	if u.IsZero() {
		return "0"
	}
	if p, ok := u.Property(); ok && p.Kind != property.KindIrrational {
		return u.ToDisplayString(opts.degrees, true, true)
	}
	if opts.radix == 10 {
		return u.TruncatedString(opts.precision)
	}
	rep, err := constructive.ToStringFloatRep(u.Constructive(), opts.precision, opts.radix, -64)
	if err != nil {
		return u.TruncatedString(opts.precision)
	}
	return radixFloatString(rep)
}

func radixFloatString(rep constructive.StringFloatRep) string {
	if rep.Sign == 0 {
		return "0"
	}
	sign := ""
	if rep.Sign < 0 {
		sign = "-"
	}
	mantissa, exp := rep.Mantissa, rep.Exponent
	switch {
	case exp <= 0:
		return sign + "0." + zeros(-exp) + mantissa
	case exp >= len(mantissa):
		return sign + mantissa + zeros(exp-len(mantissa))
	default:
		return sign + mantissa[:exp] + "." + mantissa[exp:]
	}
}

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
