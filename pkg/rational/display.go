package rational

import (
	"math/big"
	"strings"
)

// String emits num/den (always in lowest terms, since math/big.Rat
// maintains that invariant on every operation), or just num for an
// integer.
func (r *BoundedRational) String() string {
	if r == nil {
		return "null"
	}
	if r.r.IsInt() {
		return r.r.Num().String()
	}
	return r.r.Num().String() + "/" + r.r.Denom().String()
}

var superscriptDigits = map[byte]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

var subscriptDigits = map[byte]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉', '-': '₋',
}

func mapDigits(s string, table map[byte]rune) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		sb.WriteRune(table[s[i]])
	}
	return sb.String()
}

// DisplayString renders r reduced, optionally as a mixed number and/or
// with the Unicode fraction slash (superscript numerator, U+2044, and
// subscript denominator) instead of a plain "/".
func (r *BoundedRational) DisplayString(unicode, mixed bool) string {
	if r == nil {
		return "null"
	}
	if r.r.IsInt() {
		return r.r.Num().String()
	}

	neg := r.r.Sign() < 0
	num := new(big.Int).Abs(r.r.Num())
	den := r.r.Denom()

	var whole *big.Int
	if mixed {
		whole = new(big.Int)
		whole.QuoRem(num, den, num)
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	if mixed && whole.Sign() != 0 {
		sb.WriteString(whole.String())
		if num.Sign() != 0 {
			sb.WriteByte(' ')
		}
	}
	if num.Sign() != 0 {
		if unicode {
			sb.WriteString(mapDigits(num.String(), superscriptDigits))
			sb.WriteRune('⁄')
			sb.WriteString(mapDigits(den.String(), subscriptDigits))
		} else {
			sb.WriteString(num.String())
			sb.WriteByte('/')
			sb.WriteString(den.String())
		}
	}
	return sb.String()
}

func tenPow(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// TruncatedString prints r with exactly n fractional digits, truncating
// toward zero rather than rounding.
func (r *BoundedRational) TruncatedString(n int) string {
	if r == nil {
		return "null"
	}

	neg := r.r.Sign() < 0
	num := new(big.Int).Abs(r.r.Num())
	scaled := new(big.Int).Mul(num, tenPow(n))
	truncated := new(big.Int).Quo(scaled, r.r.Denom())

	s := truncated.String()
	if len(s) <= n {
		s = strings.Repeat("0", n+1-len(s)) + s
	}

	var out string
	if n > 0 {
		out = s[:len(s)-n] + "." + s[len(s)-n:]
	} else {
		out = s
	}
	if neg {
		out = "-" + out
	}
	return out
}
