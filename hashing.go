package primes

import "github.com/dolthub/maphash"

// splitmix64 scrambles a word so that summing hashed factors does not cancel
// out structure between neighbouring inputs.
// see https://en.wikipedia.org/wiki/SplitMix64
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Digester produces order-independent fingerprints of factor batches for
// diagnostics only; equality checks go through CompareFactors. Two
// batches digest to the same value iff (up to hash collisions) every target
// carries the same multiset of factors. Digests are only comparable when
// produced by the same Digester, since each one draws a random seed.
type Digester struct {
	h maphash.Hasher[int64]
}

// NewDigester returns a Digester with a fresh random seed.
func NewDigester() Digester {
	return Digester{h: maphash.NewHasher[int64]()}
}

// List digests a single factor list; the order of factors does not matter.
func (d Digester) List(f FactorList) uint64 {
	var sum uint64
	for _, v := range f {
		sum += splitmix64(d.h.Hash(v))
	}
	return sum
}

// Batch digests a batch of lists. Each list's digest is bound to its position
// so swapping two targets' factors changes the result.
func (d Digester) Batch(lists []FactorList) uint64 {
	var sum uint64
	for i, f := range lists {
		sum += splitmix64(d.List(f) ^ splitmix64(uint64(i)))
	}
	return sum
}
