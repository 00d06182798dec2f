package primes

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options configures the parallel builders.
type Options struct {
	// Workers is the number of goroutines K. Zero selects runtime.NumCPU().
	Workers int
	// Logger receives debug events. Nil selects logrus.StandardLogger().
	Logger logrus.FieldLogger
}

func (o Options) workers() (int, error) {
	switch {
	case o.Workers < 0:
		return 0, errors.Wrapf(ErrInvalidWorkers, "got %d", o.Workers)
	case o.Workers == 0:
		return runtime.NumCPU(), nil
	default:
		return o.Workers, nil
	}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}
