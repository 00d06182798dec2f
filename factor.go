package primes

import (
	"slices"

	"github.com/pkg/errors"
)

// BatchSize is the number of targets factorized per ceiling.
const BatchSize = 100

// FactorList holds the factors of one target with multiplicity. The last
// entry may be a residual that trial division did not verify as prime.
type FactorList []int64

// Product multiplies all factors. An empty list yields 1.
func (f FactorList) Product() int64 {
	p := int64(1)
	for _, v := range f {
		p *= v
	}
	return p
}

// Sorted returns an ascending copy of f.
func (f FactorList) Sorted() FactorList {
	out := slices.Clone(f)
	slices.Sort(out)
	return out
}

// Equal reports whether f and o hold the same factors in the same order.
func (f FactorList) Equal(o FactorList) bool {
	return slices.Equal(f, o)
}

// Targets returns the batch {n²-1, n²-2, ..., n²-100}. n must be at least 11
// so that every target is >= 2.
func Targets(n int64) ([]int64, error) {
	if n < 1 || n > MaxCeiling {
		return nil, errors.Wrapf(ErrInvalidCeiling, "ceiling %d not in [1, %d]", n, MaxCeiling)
	}
	if n*n-BatchSize < 2 {
		return nil, errors.Wrapf(ErrCeilingTooSmall, "ceiling %d", n)
	}
	sq := n * n
	out := make([]int64, BatchSize)
	for i := range out {
		out[i] = sq - int64(i+1)
	}
	return out, nil
}

func checkTarget(target int64) error {
	if target < 2 {
		return errors.Wrapf(ErrOutOfRange, "target %d", target)
	}
	return nil
}

// FactorizeSequential trial-divides target by 2 and then by the primes of s in
// ascending order, retrying a prime after every successful division. Whatever
// is left once j² exceeds the remainder, or the sieve runs out of primes, is
// appended as the final factor. Factors come out in ascending order.
//
// Because the loop runs while j² <= remainder, the residual is always prime
// for targets below N², including squares of primes.
func FactorizeSequential(s *Sieve, target int64) (FactorList, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}
	var out FactorList
	rem := target
	for rem&1 == 0 {
		out = append(out, 2)
		rem >>= 1
	}

	j := int64(3)
	for rem != 1 && j*j <= rem {
		if rem%j == 0 {
			out = append(out, j)
			rem /= j
			continue
		}
		next, err := s.FindNextPrime(j + 2)
		if errors.Is(err, ErrNoMorePrimes) {
			break
		}
		if err != nil {
			return nil, err
		}
		j = next
	}
	if rem != 1 {
		out = append(out, rem)
	}
	return out, nil
}

// FactorizeBatchSequential factorizes every target in order.
func FactorizeBatchSequential(s *Sieve, targets []int64) ([]FactorList, error) {
	out := make([]FactorList, len(targets))
	for i, t := range targets {
		f, err := FactorizeSequential(s, t)
		if err != nil {
			return nil, errors.Wrapf(err, "target #%d", i)
		}
		out[i] = f
	}
	return out, nil
}
