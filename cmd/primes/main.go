package main

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	primes "github.com/HumaneWolf/uio-inf2440-oblig3"
)

/*
Sieve of Eratosthenes over odd numbers, built sequentially and with K workers,
followed by factorization of the 100 numbers just below N² with both engines.
The two sieves and the two factor batches are cross-checked and every mismatch
is logged; mismatches do not abort the run.

Example calls:

	go run ./cmd/primes -n 2000000 -k 8
	PRIMES_WORKERS=4 go run ./cmd/primes -n 100 --log-level debug --report factors.yaml
	go run ./cmd/primes --config primes.yaml
*/

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "primes",
		Short:        "Sieve primes below a ceiling and factorize the 100 numbers below its square",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			_, err = run(cfg, log)
			return err
		},
	}

	flags := cmd.Flags()
	flags.Int64P(keyCeiling, "n", defaultCeiling, "ceiling N, highest number to check for")
	flags.IntP(keyWorkers, "k", 0, "number of workers, 0 to use the number of cores")
	flags.String(keyLogLevel, "info", "log level: debug | info | warn | error")
	flags.String(keyReport, "", "write the factor report as YAML to this path")
	flags.String(keyConfig, "", "optional YAML config file")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("PRIMES")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	return cmd
}

// envReplacer maps flag keys such as log-level to PRIMES_LOG_LEVEL.
var envReplacer = strings.NewReplacer("-", "_")

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	log.SetLevel(lvl)
	return log, nil
}

// summary is what one run found; mismatch counts are zero on agreement.
type summary struct {
	Primes           int
	SieveMismatches  int
	FactorMismatches int
	Targets          []int64
	Factors          []primes.FactorList
}

func run(cfg config, log logrus.FieldLogger) (summary, error) {
	var sum summary
	opts := primes.Options{Workers: cfg.Workers, Logger: log}
	log = log.WithFields(logrus.Fields{"n": cfg.Ceiling, "k": cfg.Workers})

	start := time.Now()
	seq, err := primes.BuildSequential(cfg.Ceiling)
	if err != nil {
		return sum, errors.Wrap(err, "sequential sieve")
	}
	log.WithField("elapsed", time.Since(start)).Info("sequential sieve done")

	start = time.Now()
	par, err := primes.BuildParallel(cfg.Ceiling, opts)
	if err != nil {
		return sum, errors.Wrap(err, "parallel sieve")
	}
	log.WithField("elapsed", time.Since(start)).Info("parallel sieve done")

	mismatches, err := primes.CompareSieves(seq, par)
	if err != nil {
		return sum, err
	}
	for _, m := range mismatches {
		log.Warn(m.String())
	}
	sum.SieveMismatches = len(mismatches)
	sum.Primes = seq.Count()
	log.WithField("primes", sum.Primes).Info("sieves compared")

	targets, err := primes.Targets(cfg.Ceiling)
	if err != nil {
		return sum, err
	}
	sum.Targets = targets

	start = time.Now()
	seqFactors, err := primes.FactorizeBatchSequential(seq, targets)
	if err != nil {
		return sum, errors.Wrap(err, "sequential factorization")
	}
	log.WithField("elapsed", time.Since(start)).Info("sequential factorization done")

	start = time.Now()
	parFactors, err := primes.FactorizeBatchParallel(par, targets, opts)
	if err != nil {
		return sum, errors.Wrap(err, "parallel factorization")
	}
	log.WithField("elapsed", time.Since(start)).Info("parallel factorization done")

	factorMismatches := primes.CompareFactors(seqFactors, parFactors)
	for _, m := range factorMismatches {
		log.Warn(m.String())
	}
	sum.FactorMismatches = len(factorMismatches)
	sum.Factors = seqFactors

	d := primes.NewDigester()
	log.WithFields(logrus.Fields{
		"sequential": d.Batch(seqFactors),
		"parallel":   d.Batch(parFactors),
	}).Info("factor batch digests")

	if cfg.Report != "" {
		r := &yamlReport{}
		if err := primes.WriteReport(r, targets, seqFactors); err != nil {
			return sum, err
		}
		if err := r.save(cfg.Report); err != nil {
			return sum, err
		}
		log.WithField("path", cfg.Report).Info("factor report written")
	}
	return sum, nil
}
