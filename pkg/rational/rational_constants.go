package rational

import (
	"math/big"
	"sync"
)

var negTwo = sync.OnceValue(func() *BoundedRational { return &BoundedRational{r: big.NewRat(-2, 1)} })
var negOne = sync.OnceValue(func() *BoundedRational { return &BoundedRational{r: big.NewRat(-1, 1)} })

// Zero is the interned constant 0.
var Zero = sync.OnceValue(func() *BoundedRational { return &BoundedRational{r: big.NewRat(0, 1)} })

// One is the interned constant 1.
var One = sync.OnceValue(func() *BoundedRational { return &BoundedRational{r: big.NewRat(1, 1)} })

// Two is the interned constant 2.
var Two = sync.OnceValue(func() *BoundedRational { return &BoundedRational{r: big.NewRat(2, 1)} })

// Ten is the interned constant 10.
var Ten = sync.OnceValue(func() *BoundedRational { return &BoundedRational{r: big.NewRat(10, 1)} })

// FromLong builds an integer-valued BoundedRational, returning one of the
// interned singletons {-2,-1,0,1,2,10} when n matches.
func FromLong(n int64) *BoundedRational {
	switch n {
	case -2:
		return negTwo()
	case -1:
		return negOne()
	case 0:
		return Zero()
	case 1:
		return One()
	case 2:
		return Two()
	case 10:
		return Ten()
	default:
		return &BoundedRational{r: big.NewRat(n, 1)}
	}
}
