package primes

// numbersPerByte is the number of integers covered by one sieve byte
// (8 odd and 8 even numbers).
const numbersPerByte = 16

// Segment is a half-open range [Start, Stop) of integers owned by one worker.
// Start is always a multiple of 16, so no two segments share a sieve byte.
type Segment struct {
	Start int64
	Stop  int64
}

// Empty reports whether the segment covers no integers.
func (s Segment) Empty() bool { return s.Stop <= s.Start }

// Len returns the number of integers in the segment.
func (s Segment) Len() int64 {
	if s.Empty() {
		return 0
	}
	return s.Stop - s.Start
}

// Partition splits [lo, hi) into k contiguous byte-aligned segments. lo is
// rounded down to a multiple of 16; every segment gets the same number of
// bytes and the last one absorbs the remainder, so the union is exactly
// [lo &^ 15, hi). When k exceeds the number of bytes the leading segments are
// empty. k < 1 yields nil.
func Partition(lo, hi int64, k int) []Segment {
	if k < 1 {
		return nil
	}
	if lo < 0 {
		lo = 0
	}
	base := lo &^ (numbersPerByte - 1)
	segs := make([]Segment, k)
	if hi <= base {
		for i := range segs {
			segs[i] = Segment{Start: base, Stop: base}
		}
		return segs
	}

	total := (hi - base + numbersPerByte - 1) / numbersPerByte
	per := total / int64(k) * numbersPerByte
	start := base
	for i := 0; i < k-1; i++ {
		segs[i] = Segment{Start: start, Stop: start + per}
		start += per
	}
	segs[k-1] = Segment{Start: start, Stop: hi}
	return segs
}
