package primes

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietOptions(k int) Options {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return Options{Workers: k, Logger: log}
}

func requireSameSieve(t *testing.T, n int64, k int) {
	t.Helper()
	seq, err := BuildSequential(n)
	require.NoError(t, err)
	par, err := BuildParallel(n, quietOptions(k))
	require.NoError(t, err)

	mismatches, err := CompareSieves(seq, par)
	require.NoError(t, err)
	if len(mismatches) > 0 {
		t.Fatalf("n=%d k=%d: %d mismatching bytes, first %s", n, k, len(mismatches), mismatches[0])
	}
}

func TestBuildParallel_MatchesSequential(t *testing.T) {
	ceilings := []int64{1, 2, 3, 10, 30, 100, 101, 121, 255, 256, 257, 1000, 4096, 65_537, 1_000_003}
	for _, n := range ceilings {
		for _, k := range []int{1, 2, 3, 4, 7, 8, 16, 100} {
			requireSameSieve(t, n, k)
		}
	}
}

func TestBuildParallel_RandomCeilings(t *testing.T) {
	iterations := 200
	if testing.Short() {
		iterations = 20
	}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < iterations; i++ {
		n := 1 + r.Int63n(300_000)
		k := 1 + r.Intn(33)
		requireSameSieve(t, n, k)
	}
}

func TestBuildParallel_Ceiling100Workers4(t *testing.T) {
	par, err := BuildParallel(100, quietOptions(4))
	require.NoError(t, err)

	small, err := BuildSequential(30)
	require.NoError(t, err)
	for i := int64(1); i < 30; i += 2 {
		want, err := small.IsPrime(i)
		require.NoError(t, err)
		got, err := par.IsPrime(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "IsPrime(%d)", i)
	}
	assert.Equal(t, 25, par.Count())
}

func TestBuildParallel_DefaultWorkers(t *testing.T) {
	requireSameSieve(t, 50_000, 0)
}

func TestBuildParallel_InvalidArguments(t *testing.T) {
	_, err := BuildParallel(100, quietOptions(-1))
	assert.ErrorIs(t, err, ErrInvalidWorkers)

	_, err = BuildParallel(0, quietOptions(2))
	assert.ErrorIs(t, err, ErrInvalidCeiling)
}

func TestBuildParallel_LogsSegments(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	_, err := BuildParallel(10_000, Options{Workers: 3, Logger: log})
	require.NoError(t, err)

	segments := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "segment assigned" {
			segments++
		}
	}
	assert.Equal(t, 3, segments)
	assert.Equal(t, "bootstrap sieve complete", hook.AllEntries()[0].Message)
	assert.EqualValues(t, 101, hook.AllEntries()[0].Data["bootstrap"])
}

func TestBootstrapPrimes(t *testing.T) {
	s, err := NewSieve(1000)
	require.NoError(t, err)
	boot := isqrt(1000) + 1
	require.NoError(t, s.sieveUpTo(boot))
	assert.Equal(t, []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31}, s.bootstrapPrimes(boot))
}
