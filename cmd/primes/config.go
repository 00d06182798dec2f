package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	keyCeiling  = "ceiling"
	keyWorkers  = "workers"
	keyLogLevel = "log-level"
	keyReport   = "report"
	keyConfig   = "config"

	defaultCeiling = 2_000_000
)

type config struct {
	Ceiling  int64
	Workers  int
	LogLevel string
	Report   string
}

// loadConfig merges the optional config file under flags and environment.
func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, errors.Wrapf(err, "read config %s", path)
		}
	}
	cfg := config{
		Ceiling:  v.GetInt64(keyCeiling),
		Workers:  v.GetInt(keyWorkers),
		LogLevel: v.GetString(keyLogLevel),
		Report:   v.GetString(keyReport),
	}
	if cfg.Ceiling < 11 {
		return cfg, errors.Errorf("ceiling must be at least 11, got %d", cfg.Ceiling)
	}
	if cfg.Workers < 0 {
		return cfg, errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}
