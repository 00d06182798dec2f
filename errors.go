package primes

import "github.com/pkg/errors"

var (
	// ErrEvenArgument is returned when a flag operation receives an even number.
	// Only odd numbers are represented in a Sieve.
	ErrEvenArgument = errors.New("argument must be odd")

	// ErrOutOfRange is returned for numbers outside [1, ceiling).
	ErrOutOfRange = errors.New("argument out of sieve range")

	// ErrNoMorePrimes signals that a scan reached the ceiling without finding a
	// prime. Loops that expect it treat it as normal termination.
	ErrNoMorePrimes = errors.New("no more primes below ceiling")

	// ErrInvalidCeiling is returned for ceilings outside [1, MaxCeiling] and
	// when comparing sieves of different ceilings.
	ErrInvalidCeiling = errors.New("invalid ceiling")

	// ErrCeilingTooSmall is returned when n²-100 would be below 2, leaving
	// targets that cannot be factorized.
	ErrCeilingTooSmall = errors.New("ceiling too small for target batch")

	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("invalid worker count")
)
