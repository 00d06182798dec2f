package primes

import (
	"fmt"

	"github.com/pkg/errors"
)

// ByteMismatch is one differing byte between two sieves.
type ByteMismatch struct {
	Index      int
	Sequential byte
	Parallel   byte
}

func (m ByteMismatch) String() string {
	return fmt.Sprintf("mismatch at index %d: %s and %s", m.Index, BitString(m.Sequential), BitString(m.Parallel))
}

// CompareSieves compares two sieves byte for byte. Sieves of different
// ceilings cannot be compared.
func CompareSieves(seq, par *Sieve) ([]ByteMismatch, error) {
	if seq.n != par.n {
		return nil, errors.Wrapf(ErrInvalidCeiling, "ceilings differ: %d and %d", seq.n, par.n)
	}
	var out []ByteMismatch
	for i := range seq.bits {
		if seq.bits[i] != par.bits[i] {
			out = append(out, ByteMismatch{Index: i, Sequential: seq.bits[i], Parallel: par.bits[i]})
		}
	}
	return out, nil
}

// FactorMismatch is one differing position between the sorted factor lists of
// a target. A missing entry on either side is reported as 0.
type FactorMismatch struct {
	Target     int
	Position   int
	Sequential int64
	Parallel   int64
}

func (m FactorMismatch) String() string {
	return fmt.Sprintf("target #%d position %d: %d and %d", m.Target, m.Position, m.Sequential, m.Parallel)
}

// CompareFactors sorts each pair of lists and compares them element-wise.
// Targets present in only one batch are compared against an empty list.
func CompareFactors(seq, par []FactorList) []FactorMismatch {
	var out []FactorMismatch
	for t := 0; t < max(len(seq), len(par)); t++ {
		var a, b FactorList
		if t < len(seq) {
			a = seq[t].Sorted()
		}
		if t < len(par) {
			b = par[t].Sorted()
		}
		for pos := 0; pos < max(len(a), len(b)); pos++ {
			var x, y int64
			if pos < len(a) {
				x = a[pos]
			}
			if pos < len(b) {
				y = b[pos]
			}
			if x != y {
				out = append(out, FactorMismatch{Target: t, Position: pos, Sequential: x, Parallel: y})
			}
		}
	}
	return out
}

// ReportWriter persists the factors of each target.
type ReportWriter interface {
	WriteFactors(target int64, factors FactorList) error
}

// WriteReport hands every (target, factors) pair to w in batch order.
func WriteReport(w ReportWriter, targets []int64, lists []FactorList) error {
	if len(targets) != len(lists) {
		return errors.Errorf("report: %d targets but %d factor lists", len(targets), len(lists))
	}
	for i, t := range targets {
		if err := w.WriteFactors(t, lists[i]); err != nil {
			return errors.Wrapf(err, "report target %d", t)
		}
	}
	return nil
}
