package primes

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxCeiling is the largest ceiling whose square still fits an int64.
const MaxCeiling int64 = 3037000499

// Sieve stores one primality flag per odd integer in [1, ceiling).
// Odd integer i lives in byte i/16 at bit (i/2)%8. A set bit marks a composite
// (flipped) number, a clear bit a prime. 2 is never represented.
type Sieve struct {
	n    int64
	bits []byte
}

// NewSieve allocates an unsieved array of n/16+1 bytes. Every odd number is
// initially considered prime except 1, which is flipped right away.
func NewSieve(n int64) (*Sieve, error) {
	if n < 1 || n > MaxCeiling {
		return nil, errors.Wrapf(ErrInvalidCeiling, "ceiling %d not in [1, %d]", n, MaxCeiling)
	}
	s := &Sieve{
		n:    n,
		bits: make([]byte, n/16+1),
	}
	s.flip(1)
	return s, nil
}

// Ceiling returns the exclusive upper bound N.
func (s *Sieve) Ceiling() int64 { return s.n }

// Bytes exposes the packed storage. Callers must not modify it.
func (s *Sieve) Bytes() []byte { return s.bits }

func (s *Sieve) check(i int64) error {
	if i&1 == 0 {
		return errors.Wrapf(ErrEvenArgument, "got %d", i)
	}
	if i < 1 || i >= s.n {
		return errors.Wrapf(ErrOutOfRange, "got %d, ceiling %d", i, s.n)
	}
	return nil
}

// Flip marks the odd number i as composite.
func (s *Sieve) Flip(i int64) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.flip(i)
	return nil
}

// IsPrime reports whether the bit of the odd number i is still clear.
func (s *Sieve) IsPrime(i int64) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	return s.isPrime(i), nil
}

// FindNextPrime returns the smallest prime >= startFrom. It scans odd numbers
// only and returns ErrNoMorePrimes when none is left below the ceiling.
func (s *Sieve) FindNextPrime(startFrom int64) (int64, error) {
	if startFrom&1 == 0 {
		return 0, errors.Wrapf(ErrEvenArgument, "startFrom %d", startFrom)
	}
	if startFrom < 1 {
		return 0, errors.Wrapf(ErrOutOfRange, "startFrom %d", startFrom)
	}
	for i := startFrom; i < s.n; i += 2 {
		if s.isPrime(i) {
			return i, nil
		}
	}
	return 0, ErrNoMorePrimes
}

// flip and isPrime skip argument checks; callers guarantee an odd i in range.
func (s *Sieve) flip(i int64) {
	s.bits[i>>4] |= 1 << ((i >> 1) & 7)
}

func (s *Sieve) isPrime(i int64) bool {
	return s.bits[i>>4]&(1<<((i>>1)&7)) == 0
}

// Count returns the number of primes below the ceiling, 2 included.
func (s *Sieve) Count() int {
	if s.n <= 2 {
		return 0
	}
	count := 1
	for i := int64(3); i < s.n; i += 2 {
		if s.isPrime(i) {
			count++
		}
	}
	return count
}

// Primes lists every prime below the ceiling in ascending order, 2 included.
func (s *Sieve) Primes() []int64 {
	if s.n <= 2 {
		return nil
	}
	out := []int64{2}
	for i := int64(3); i < s.n; i += 2 {
		if s.isPrime(i) {
			out = append(out, i)
		}
	}
	return out
}

// BitString renders b as eight binary digits, most significant bit first.
func BitString(b byte) string {
	return fmt.Sprintf("%08b", b)
}
