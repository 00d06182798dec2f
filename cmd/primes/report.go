package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	primes "github.com/HumaneWolf/uio-inf2440-oblig3"
)

type reportEntry struct {
	Target  int64   `yaml:"target"`
	Factors []int64 `yaml:"factors,flow"`
}

// yamlReport collects factor lists in memory and writes them as one YAML
// sequence on save.
type yamlReport struct {
	entries []reportEntry
}

func (r *yamlReport) WriteFactors(target int64, factors primes.FactorList) error {
	r.entries = append(r.entries, reportEntry{Target: target, Factors: factors})
	return nil
}

func (r *yamlReport) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create report")
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(r.entries); err != nil {
		f.Close()
		return errors.Wrap(err, "encode report")
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return errors.Wrap(err, "flush report")
	}
	return f.Close()
}
