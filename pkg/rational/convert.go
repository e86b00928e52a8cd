package rational

import (
	"math"
	"math/big"
)

// FromDouble extracts x's IEEE-754 mantissa/exponent exactly, mirroring
// the bit layout pkg/constructive's FromFloat64 unpacks. Integer-valued
// doubles of absolute value <= 1000 go through the interned FromLong
// constructors instead. NaN and +-Inf are rejected with ErrArithmetic.
func FromDouble(x float64) (*BoundedRational, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, newArithmeticError("FromDouble: not finite")
	}
	if x == math.Trunc(x) && math.Abs(x) <= 1000 {
		return FromLong(int64(x)), nil
	}

	bits := math.Float64bits(x)
	negative := bits>>63 == 1
	biasedExp := (bits >> 52) & ((1 << 11) - 1)
	mantissaBits := bits & ((1 << 52) - 1)

	exponent := int(biasedExp) - 1075
	mantissa := new(big.Int).SetUint64(mantissaBits)
	if biasedExp != 0 {
		mantissa.Add(mantissa, new(big.Int).Lsh(big.NewInt(1), 52))
	} else {
		mantissa.Lsh(mantissa, 1)
	}
	if negative {
		mantissa.Neg(mantissa)
	}

	var r *big.Rat
	if exponent >= 0 {
		r = new(big.Rat).SetInt(new(big.Int).Lsh(mantissa, uint(exponent)))
	} else {
		den := new(big.Int).Lsh(big.NewInt(1), uint(-exponent))
		r = new(big.Rat).SetFrac(mantissa, den)
	}
	return maybeReduce(r), nil
}
