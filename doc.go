/*
Package primes sieves the primes below a ceiling N into a bit array over the
odd numbers and factorizes the 100 integers just below N² with them.

Both phases come in a single-goroutine and a K-worker flavour that produce
identical results:

	seq, _ := primes.BuildSequential(n)
	par, _ := primes.BuildParallel(n, primes.Options{Workers: k})
	mismatches, _ := primes.CompareSieves(seq, par)

	targets, _ := primes.Targets(n)
	a, _ := primes.FactorizeBatchSequential(seq, targets)
	b, _ := primes.FactorizeBatchParallel(par, targets, primes.Options{Workers: k})
	diff := primes.CompareFactors(a, b)

The parallel sieve bootstraps the primes up to √N sequentially and then strikes
byte-aligned segments of the rest independently. The parallel factorizer splits
candidate divisors round-robin over the workers, which share one remainder
guarded by a mutex and advance through each target in lock-step on a Barrier.
*/
package primes
