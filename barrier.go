package primes

import "sync"

// Barrier is a reusable rendezvous for a fixed number of goroutines. Each
// call to Wait blocks until all parties have arrived, then releases them
// together and resets for the next round.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	waiting    int
	generation uint64
}

// NewBarrier returns a barrier for parties goroutines. parties must be >= 1.
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic("primes: barrier needs at least one party")
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until every party has called Wait for the current round. It
// returns true for exactly one caller per round, the last to arrive.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return true
	}
	for gen == b.generation {
		b.cond.Wait()
	}
	return false
}
