package primes

import (
	"sync"
	"sync/atomic"
)

// sharedRemainder is the value every worker divides down while factorizing
// one target. Reads are lock-free; every write, together with the matching
// append to factors, happens under mu.
type sharedRemainder struct {
	mu      sync.Mutex
	value   atomic.Int64
	factors FactorList
}

func (r *sharedRemainder) reset(target int64) {
	r.mu.Lock()
	r.value.Store(target)
	r.factors = nil
	r.mu.Unlock()
}

func (r *sharedRemainder) load() int64 {
	return r.value.Load()
}

// stripTwos divides out every factor of 2 and returns the odd remainder.
func (r *sharedRemainder) stripTwos() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.value.Load()
	for v != 0 && v&1 == 0 {
		v >>= 1
		r.factors = append(r.factors, 2)
	}
	r.value.Store(v)
	return v
}

// divide divides the shared value by p if p still divides it. It returns the
// current value and whether a division happened.
func (r *sharedRemainder) divide(p int64) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.value.Load()
	if v%p != 0 {
		return v, false
	}
	v /= p
	r.value.Store(v)
	r.factors = append(r.factors, p)
	return v, true
}

// finish appends a residual other than 1 and hands over the factor list.
func (r *sharedRemainder) finish() FactorList {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v := r.value.Load(); v != 1 {
		r.factors = append(r.factors, v)
	}
	out := r.factors
	r.factors = nil
	return out
}
