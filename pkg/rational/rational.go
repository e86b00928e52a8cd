// Package rational implements the bounded rational (BR) type: an exact
// numerator/denominator pair that falls back to a null state rather than
// growing without bound, the same "give up cleanly past a size budget"
// contract pkg/constructive's PrecisionOverflow enforces for approximation
// precision.
package rational

import (
	"math"
	"math/big"

	"github.com/brooksby/realmath/pkg/constructive"
)

// MaxSize is the bit-length budget (numerator plus denominator) a
// BoundedRational is allowed to grow to before arithmetic starts
// returning the null state instead of an ever-larger exact value.
const MaxSize = 10000

// BoundedRational is an exact rational value, or nil to represent the
// null (too-big) state. Every arithmetic method is nil-safe on both the
// receiver and its argument: a null operand makes the result null, the
// same way a NaN poisons a float64 computation.
//
// math/big.Rat always stores its value in lowest terms, so unlike the
// BigInteger-based lineage this type is adapted from, there is no
// separate "probabilistic maybeReduce" step to amortize the cost of a
// gcd -- Go's big.Rat already pays that cost on every arithmetic op.
// maybeReduce here only has to enforce the MaxSize cutoff.
type BoundedRational struct {
	r *big.Rat
}

func bitLen(r *big.Rat) int {
	return r.Num().BitLen() + r.Denom().BitLen()
}

// maybeReduce wraps r as a BoundedRational, or returns nil (null) if r's
// bit length exceeds MaxSize. Integer-valued results are never null.
func maybeReduce(r *big.Rat) *BoundedRational {
	if r.IsInt() {
		return &BoundedRational{r: r}
	}
	if bitLen(r) > MaxSize {
		return nil
	}
	return &BoundedRational{r: r}
}

// New builds a/b, returning ErrDivideByZero when b is zero.
func New(a, b *big.Int) (*BoundedRational, error) {
	if b.Sign() == 0 {
		return nil, ErrDivideByZero
	}
	return maybeReduce(new(big.Rat).SetFrac(a, b)), nil
}

// New64 builds a/b from int64s, returning ErrDivideByZero when b is zero.
func New64(a, b int64) (*BoundedRational, error) {
	if b == 0 {
		return nil, ErrDivideByZero
	}
	return maybeReduce(new(big.Rat).SetFrac64(a, b)), nil
}

// FromRat wraps an existing big.Rat.
func FromRat(r *big.Rat) *BoundedRational {
	return maybeReduce(new(big.Rat).Set(r))
}

// FromBigInt builds an integer-valued BoundedRational.
func FromBigInt(n *big.Int) *BoundedRational {
	return &BoundedRational{r: new(big.Rat).SetInt(n)}
}

// FromInt64 builds an integer-valued BoundedRational from an int64.
func FromInt64(n int64) *BoundedRational {
	return FromLong(n)
}

// FromInt builds an integer-valued BoundedRational from an int.
func FromInt(n int) *BoundedRational {
	return FromLong(int64(n))
}

// IsNull reports whether r is the null (too-big, or otherwise
// unrepresentable) state. A nil *BoundedRational is always null; the
// method exists so call sites read `x.IsNull()` instead of `x == nil`.
func (r *BoundedRational) IsNull() bool {
	return r == nil
}

// Add returns r+o, or null if either operand is null.
func (r *BoundedRational) Add(o *BoundedRational) *BoundedRational {
	if r == nil || o == nil {
		return nil
	}
	return maybeReduce(new(big.Rat).Add(r.r, o.r))
}

// Subtract returns r-o via r.Add(o.Negate()), matching the spec's
// "subtract is a + (-b)".
func (r *BoundedRational) Subtract(o *BoundedRational) *BoundedRational {
	if r == nil || o == nil {
		return nil
	}
	return r.Add(o.Negate())
}

// Multiply returns r*o, short-circuited when either side is exactly 1.
func (r *BoundedRational) Multiply(o *BoundedRational) *BoundedRational {
	if r == nil || o == nil {
		return nil
	}
	if r.r.Cmp(oneRat) == 0 {
		return o
	}
	if o.r.Cmp(oneRat) == 0 {
		return r
	}
	return maybeReduce(new(big.Rat).Mul(r.r, o.r))
}

// Divide returns r/o, or ErrDivideByZero when o is zero.
func (r *BoundedRational) Divide(o *BoundedRational) (*BoundedRational, error) {
	if r == nil || o == nil {
		return nil, nil
	}
	if o.IsZero() {
		return nil, ErrDivideByZero
	}
	return maybeReduce(new(big.Rat).Quo(r.r, o.r)), nil
}

// Negate returns -r.
func (r *BoundedRational) Negate() *BoundedRational {
	if r == nil {
		return nil
	}
	return &BoundedRational{r: new(big.Rat).Neg(r.r)}
}

// Inverse returns 1/r, or ErrDivideByZero when r is zero.
func (r *BoundedRational) Inverse() (*BoundedRational, error) {
	if r == nil {
		return nil, nil
	}
	if r.IsZero() {
		return nil, ErrDivideByZero
	}
	return &BoundedRational{r: new(big.Rat).Inv(r.r)}, nil
}

// Sign returns -1, 0, or 1. A null receiver reports 0: callers that care
// about null must check IsNull first.
func (r *BoundedRational) Sign() int {
	if r == nil {
		return 0
	}
	return r.r.Sign()
}

// IsZero reports whether r is exactly zero.
func (r *BoundedRational) IsZero() bool {
	return r != nil && r.r.Sign() == 0
}

// Floor returns the greatest integer <= r.
func (r *BoundedRational) Floor() *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.r.Num(), r.r.Denom(), m)
	return q
}

// Int32 requires r to be an integer representable in 32 bits, per the
// spec's to_int32 (else ErrArithmetic).
func (r *BoundedRational) Int32() (int32, error) {
	if !r.r.IsInt() {
		return 0, newArithmeticError("Int32: not an integer")
	}
	n := r.r.Num()
	if !n.IsInt64() {
		return 0, newArithmeticError("Int32: out of range")
	}
	v := n.Int64()
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, newArithmeticError("Int32: out of range")
	}
	return int32(v), nil
}

// BigInt requires r to be an integer (else ErrArithmetic).
func (r *BoundedRational) BigInt() (*big.Int, error) {
	if !r.r.IsInt() {
		return nil, newArithmeticError("BigInt: not an integer")
	}
	return new(big.Int).Set(r.r.Num()), nil
}

// Num returns the (reduced) numerator.
func (r *BoundedRational) Num() *big.Int { return r.r.Num() }

// Denom returns the (reduced) denominator.
func (r *BoundedRational) Denom() *big.Int { return r.r.Denom() }

// Rat exposes the underlying big.Rat for callers (pkg/unified,
// pkg/property) that need direct access.
func (r *BoundedRational) Rat() *big.Rat { return r.r }

// CompareTo compares r and o as sgn(a*d' - a'*d) * sgn(d) * sgn(d'),
// except that null is treated as the greater value regardless of which
// side it appears on: null.CompareTo(x) = 1, x.CompareTo(null) = -1 for
// any non-null x, and null.CompareTo(null) = 0.
func (r *BoundedRational) CompareTo(o *BoundedRational) int {
	switch {
	case r == nil && o == nil:
		return 0
	case r == nil:
		return 1
	case o == nil:
		return -1
	}
	return r.r.Cmp(o.r)
}

// Constructive converts r to its equivalent constructive real.
func (r *BoundedRational) Constructive() constructive.Real {
	return constructive.Divide(constructive.FromBigInt(r.r.Num()), constructive.FromBigInt(r.r.Denom()))
}

var oneRat = big.NewRat(1, 1)
