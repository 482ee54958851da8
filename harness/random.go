package harness

import (
	"math/rand/v2"
	"time"
)

// RandomGenerator produces random test inputs. It is not safe for concurrent use.
type RandomGenerator struct {
	r *rand.Rand
}

// NewRandomGenerator returns a generator seeded from the clock.
func NewRandomGenerator() *RandomGenerator {
	now := uint64(time.Now().UnixNano())
	return NewSeededRandomGenerator(now, now>>17)
}

// NewSeededRandomGenerator returns a generator whose output is fixed by the two seeds.
func NewSeededRandomGenerator(seed1, seed2 uint64) *RandomGenerator {
	return &RandomGenerator{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Ints returns n integers drawn uniformly from [lo, hi].
func (g *RandomGenerator) Ints(n, lo, hi int) []int {
	if hi < lo {
		lo, hi = hi, lo
	}
	out := make([]int, n)
	for i := range out {
		out[i] = lo + g.r.IntN(hi-lo+1)
	}
	return out
}

// String returns a random string of n lowercase letters.
func (g *RandomGenerator) String(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + g.r.IntN(26))
	}
	return string(b)
}

// Strings returns count random strings with lengths in [minLen, maxLen].
func (g *RandomGenerator) Strings(count, minLen, maxLen int) []string {
	if maxLen < minLen {
		minLen, maxLen = maxLen, minLen
	}
	out := make([]string, count)
	for i := range out {
		out[i] = g.String(minLen + g.r.IntN(maxLen-minLen+1))
	}
	return out
}
