package constructive

import (
	"context"
	"math"
)

type precisionOverflowError struct{}

func (e precisionOverflowError) Error() string {
	return "precision overflow"
}

var PrecisionOverflow error = precisionOverflowError{}

type precisionLimitKey struct{}

func WithoutPrecisionLimit(parent context.Context) context.Context {
	return context.WithValue(parent, precisionLimitKey{}, math.MaxInt)
}

func WithPrecisionLimit(parent context.Context, limit int) context.Context {
	if limit < 0 {
		limit = -limit
	}
	return context.WithValue(parent, precisionLimitKey{}, limit)
}

func PrecisionLimit(ctx context.Context) (int, bool) {
	limit, ok := ctx.Value(precisionLimitKey{}).(int)
	return limit, ok
}

func CheckPrecisionOverflow(ctx context.Context, p int) error {
	if limit, ok := PrecisionLimit(ctx); ok && limit >= 0 {
		if p > limit {
			return PrecisionOverflow
		}
	}

	return nil
}

// CheckPrecision implements spec.md §4.1's check_precision: it fails with
// PrecisionOverflow unless the top four bits of p agree, which keeps
// precision arithmetic (additions, multiplication by small constants) at
// least a factor of 8 away from overflowing the machine int.
func CheckPrecision(p int) error {
	if !IsPrecisionValid(p) {
		return PrecisionOverflow
	}
	return nil
}
