package primes

import (
	"math"

	"github.com/pkg/errors"
)

// BuildSequential sieves every odd number below n on a single goroutine.
//
// Starting at 3, each discovered prime p strikes its odd multiples from p²
// upward in steps of 2p; the next prime is the first clear bit after p. The
// loop ends once p² reaches n or the scan runs out of primes.
func BuildSequential(n int64) (*Sieve, error) {
	s, err := NewSieve(n)
	if err != nil {
		return nil, err
	}
	if err := s.sieveUpTo(n); err != nil {
		return nil, err
	}
	return s, nil
}

// sieveUpTo runs the incremental sieve over [1, bound). Bits at or above bound
// are left untouched.
func (s *Sieve) sieveUpTo(bound int64) error {
	if bound > s.n {
		bound = s.n
	}
	for p := int64(3); p*p < bound; {
		if err := s.flipInRange(p, p*p, bound); err != nil {
			return err
		}
		next, err := s.FindNextPrime(p + 2)
		if errors.Is(err, ErrNoMorePrimes) {
			return nil
		}
		if err != nil {
			return err
		}
		p = next
	}
	return nil
}

// flipInRange flips every odd multiple of prime in [start, stop). start is
// rounded up to the next odd multiple of prime.
func (s *Sieve) flipInRange(prime, start, stop int64) error {
	if prime&1 == 0 {
		return errors.Wrapf(ErrEvenArgument, "prime %d", prime)
	}
	if prime < 3 {
		return errors.Wrapf(ErrOutOfRange, "degenerate prime %d", prime)
	}
	if stop > s.n {
		stop = s.n
	}
	if rest := start % prime; rest != 0 {
		start += prime - rest
	}
	if start&1 == 0 {
		start += prime
	}
	for i := start; i < stop; i += 2 * prime {
		s.flip(i)
	}
	return nil
}

// isqrt returns the largest r with r*r <= n.
func isqrt(n int64) int64 {
	if n < 1 {
		return 0
	}
	// Compare by division; r*r overflows when the float estimate rounds up
	// near MaxInt64.
	r := int64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
