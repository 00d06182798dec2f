package primes

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BuildParallel produces the same sieve as BuildSequential using K workers.
//
// The range [1, √n] is sieved sequentially first, since every later step
// depends on the primes found there. Those bootstrap primes are copied out of
// the array, then [√n, n) is split into K byte-aligned segments which the
// workers strike independently. Segments never share a byte and the bootstrap
// primes are read-only, so the workers need no synchronization beyond the
// final join.
func BuildParallel(n int64, opts Options) (*Sieve, error) {
	k, err := opts.workers()
	if err != nil {
		return nil, err
	}
	log := opts.logger()

	s, err := NewSieve(n)
	if err != nil {
		return nil, err
	}

	boot := isqrt(n) + 1
	if boot > n {
		boot = n
	}
	if err := s.sieveUpTo(boot); err != nil {
		return nil, err
	}
	bootstrap := s.bootstrapPrimes(boot)
	log.WithFields(logrus.Fields{
		"ceiling":   n,
		"bootstrap": boot,
		"primes":    len(bootstrap),
	}).Debug("bootstrap sieve complete")

	var g errgroup.Group
	for w, seg := range Partition(boot, n, k) {
		log.WithFields(logrus.Fields{
			"worker": w,
			"start":  seg.Start,
			"stop":   seg.Stop,
		}).Debug("segment assigned")
		if seg.Empty() {
			continue
		}
		g.Go(func() error {
			return s.sieveSegment(seg, bootstrap)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// bootstrapPrimes lists the odd primes below bound whose square is below the
// ceiling, i.e. every prime needed to strike the rest of the array.
func (s *Sieve) bootstrapPrimes(bound int64) []int64 {
	var out []int64
	for p := int64(3); p < bound && p*p < s.n; p += 2 {
		if s.isPrime(p) {
			out = append(out, p)
		}
	}
	return out
}

// sieveSegment strikes multiples of the bootstrap primes inside seg only,
// starting each prime at max(p², seg.Start).
func (s *Sieve) sieveSegment(seg Segment, primes []int64) error {
	for _, p := range primes {
		sq := p * p
		if sq >= seg.Stop {
			break
		}
		start := seg.Start
		if sq > start {
			start = sq
		}
		if err := s.flipInRange(p, start, seg.Stop); err != nil {
			return err
		}
	}
	return nil
}
