package constructive

import (
	"math/big"
	"sync"

	"github.com/brooksby/realmath/pkg/cancel"
)

// gaussLegendrePi computes pi via the Gauss-Legendre arithmetic-geometric
// mean iteration, per spec.md §4.3/§5. It is kept distinct from AtanPi (the
// teacher's original Machin-formula Pi, preserved under that name) so the
// two can be cross-checked, per spec.md §8 scenario 1.
type gaussLegendrePi struct {
	precisionTracker
	cache piCache
}

// piCache holds, per AGM iteration index n, the last computed b_n
// approximation and the (negative) bit precision it was computed at. A
// later call that needs b_n at a finer precision reseeds Newton's method
// from the cached value instead of bootstrapping from scratch, per spec.md
// §5's "Gauss-Legendre pi vector".
type piCache struct {
	mu      sync.Mutex
	bLens   []int // bit precision (fracBits) each entry was computed at
	bValues []*big.Int
}

// get returns the cached b_n (if any) and its fracBits, for seeding.
func (c *piCache) get(n int) (*big.Int, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.normalize()
	if n >= len(c.bValues) {
		return nil, 0, false
	}
	return c.bValues[n], c.bLens[n], true
}

// put stores b_n at fracBits, but only if fracBits is finer (larger) than
// whatever is already cached for that index -- the same monotone-toward-
// more-precise rule spec.md's CR cache applies to min_prec.
func (c *piCache) put(n int, fracBits int, v *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.normalize()
	for len(c.bLens) <= n {
		c.bLens = append(c.bLens, -1)
	}
	if c.bLens[n] >= fracBits {
		return
	}
	c.bLens[n] = fracBits
	for len(c.bValues) <= n {
		c.bValues = append(c.bValues, nil)
	}
	c.bValues[n] = v
}

// normalize recovers from an interruption between the two appends in put:
// if the length vector ran ahead of the value vector, truncate it back.
func (c *piCache) normalize() {
	if len(c.bLens) > len(c.bValues) {
		c.bLens = c.bLens[:len(c.bValues)]
	}
}

var gaussLegendrePiSingleton = &gaussLegendrePi{}

// GaussLegendrePi returns the Gauss-Legendre AGM constructive real for pi.
// Every call returns the same package-level node, so all callers share its
// approximation cache and its b_n cache (constructive_constants.go's Pi
// builds on it).
func GaussLegendrePi() Real {
	return gaussLegendrePiSingleton
}

func (c *gaussLegendrePi) approximate(p int) *big.Int {
	extra := boundLog2(max(1, -p)) + 10
	fracBits := extra - p // -wp from spec.md's "working precision p - extra"

	one := bigLsh(big.NewInt(1), uint(fracBits))

	a := new(big.Int).Set(one)
	// b_0 = sqrt(1/2) at fracBits, i.e. isqrt(2^(2*fracBits-1)); a cached
	// b_0 from an earlier call only seeds Newton's method.
	var b0Seed *big.Int
	if s, sLen, ok := c.cache.get(0); ok && s != nil && s.Sign() > 0 {
		b0Seed = rescaleFrac(s, sLen, fracBits)
	}
	b := bigIsqrtSeeded(bigLsh(big.NewInt(1), uint(2*fracBits-1)), b0Seed)
	c.cache.put(0, fracBits, b)
	t := bigRsh(one, 2)
	weight := int64(1)

	threshold := big.NewInt(4)
	n := 0
	for {
		cancel.CheckPanic()

		if bigAbs(bigSub(a, b)).Cmp(threshold) <= 0 {
			break
		}

		aNext := bigRsh(bigAdd(a, b), 1)

		prod := bigMul(a, b)
		seed, seedLen, ok := c.cache.get(n + 1)
		var seedVal *big.Int
		if ok && seed != nil {
			seedVal = rescaleFrac(seed, seedLen, fracBits)
		}
		bNext := bigIsqrtSeeded(prod, seedVal)
		c.cache.put(n+1, fracBits, bNext)

		diff := bigSub(aNext, a)
		diffSq := bigMul(diff, diff)
		t = bigSub(t, scale(bigMul(big.NewInt(weight), diffSq), -fracBits))

		weight *= 2
		a, b = aNext, bNext
		n++

		if n > 10_000 {
			panic(newArithmeticError("GaussLegendrePi: AGM failed to converge"))
		}
	}

	sum := bigAdd(a, b)
	num := bigMul(sum, sum)
	denom := bigLsh(t, 2)
	piScaled := bigDiv(num, denom)

	return scale(piScaled, -extra)
}

// rescaleFrac adjusts a fixed-point value from one fracBits scale to
// another via a rounded shift (scale's semantics, reused at integer
// granularity rather than through a CR node).
func rescaleFrac(v *big.Int, from, to int) *big.Int {
	if from == to {
		return v
	}
	return scale(v, to-from)
}

func (c *gaussLegendrePi) asConstruction() string {
	return "Pi(GaussLegendre)"
}
