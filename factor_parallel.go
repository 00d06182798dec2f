package primes

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FactorizeParallel factorizes a single target with K cooperating workers.
func FactorizeParallel(s *Sieve, target int64, opts Options) (FactorList, error) {
	out, err := FactorizeBatchParallel(s, []int64{target}, opts)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// FactorizeBatchParallel factorizes the targets one after another, each with
// all K workers at once. Worker w tries the w-th, (w+K)-th, ... odd prime of
// s, so the candidate divisors are split round-robin and never contended.
// A shared remainder is divided under a lock whenever a worker finds a factor;
// a barrier separates the phases of every target:
//
//	worker 0 resets the remainder          | wait
//	every worker snapshots it              | wait
//	worker 0 strips 2s, all trial-divide   | wait
//	worker 0 appends the residual          | wait
//
// Factors are returned in discovery order, which is not necessarily ascending.
func FactorizeBatchParallel(s *Sieve, targets []int64, opts Options) ([]FactorList, error) {
	k, err := opts.workers()
	if err != nil {
		return nil, err
	}
	for i, t := range targets {
		if err := checkTarget(t); err != nil {
			return nil, errors.Wrapf(err, "target #%d", i)
		}
	}

	f := &parallelFactorizer{
		table:   newPrimeTable(s),
		targets: targets,
		workers: k,
		barrier: NewBarrier(k),
		results: make([]FactorList, len(targets)),
		log:     opts.logger(),
	}
	var wg sync.WaitGroup
	for w := 0; w < k; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.run(w)
		}()
	}
	wg.Wait()
	return f.results, nil
}

type parallelFactorizer struct {
	table   primeTable
	targets []int64
	workers int
	barrier *Barrier
	rem     sharedRemainder
	results []FactorList
	log     logrus.FieldLogger
}

func (f *parallelFactorizer) run(w int) {
	for i, target := range f.targets {
		if w == 0 {
			f.rem.reset(target)
		}
		f.barrier.Wait()

		local := f.rem.load()
		f.barrier.Wait()

		if w == 0 {
			local = f.rem.stripTwos()
		}
		f.trialDivide(w, local)
		f.barrier.Wait()

		if w == 0 {
			f.results[i] = f.rem.finish()
			f.log.WithFields(logrus.Fields{
				"target":  target,
				"factors": len(f.results[i]),
			}).Debug("target factorized")
		}
		f.barrier.Wait()
	}
}

// trialDivide probes worker w's share of the candidates until the candidate
// squared exceeds the remainder, the remainder reaches 1 or the table runs out.
func (f *parallelFactorizer) trialDivide(w int, local int64) {
	st := f.table.stride(w, f.workers)
	for local != 1 {
		c, ok := st.current()
		if !ok || c*c > local {
			return
		}
		if shared := f.rem.load(); shared != local {
			local = shared
			continue
		}
		if local%c != 0 {
			st.advance()
			continue
		}
		// c may divide several times; keep it until it no longer does.
		local, _ = f.rem.divide(c)
	}
}
