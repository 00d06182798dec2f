package primes

import "math"

// primeTable caches the odd primes of a finished sieve in ascending order.
// Every prime below MaxCeiling fits a uint32, which halves the footprint
// compared to int64 and keeps more candidates per cache line during trial
// division.
type primeTable []uint32

func newPrimeTable(s *Sieve) primeTable {
	if s.n <= 3 {
		return nil
	}
	// pi(n) < 1.26 n/ln(n) for n > 1
	est := int(1.26 * float64(s.n) / math.Log(float64(s.n)))
	t := make(primeTable, 0, est)
	for i := int64(3); i < s.n; i += 2 {
		if s.isPrime(i) {
			t = append(t, uint32(i))
		}
	}
	return t
}

// stride walks a primeTable starting at offset and jumping step entries at a
// time: worker w of k visits the w-th, (w+k)-th, (w+2k)-th ... odd prime.
type stride struct {
	table primeTable
	pos   int
	step  int
}

func (t primeTable) stride(offset, step int) stride {
	return stride{table: t, pos: offset, step: step}
}

// current returns the candidate under the cursor, or false once the table is
// exhausted.
func (st *stride) current() (int64, bool) {
	if st.pos >= len(st.table) {
		return 0, false
	}
	return int64(st.table[st.pos]), true
}

func (st *stride) advance() {
	st.pos += st.step
}
