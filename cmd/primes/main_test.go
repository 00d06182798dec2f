package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	v := viper.New()
	require.NoError(t, v.BindPFlags(cmd.Flags()))
	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, config{Ceiling: defaultCeiling, Workers: 0, LogLevel: "info"}, cfg)
}

func TestLoadConfig_FlagsAndEnv(t *testing.T) {
	t.Setenv("PRIMES_WORKERS", "5")
	t.Setenv("PRIMES_LOG_LEVEL", "debug")

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-n", "1000", "--report", "out.yaml"}))

	v := viper.New()
	require.NoError(t, v.BindPFlags(cmd.Flags()))
	v.SetEnvPrefix("PRIMES")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, config{Ceiling: 1000, Workers: 5, LogLevel: "debug", Report: "out.yaml"}, cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ceiling: 4096\nworkers: 3\n"), 0o644))

	v := viper.New()
	v.Set(keyConfig, path)
	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, int64(4096), cfg.Ceiling)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name string
		set  map[string]any
	}{
		{"ceiling too small", map[string]any{keyCeiling: 10}},
		{"negative workers", map[string]any{keyCeiling: 100, keyWorkers: -1}},
		{"missing config file", map[string]any{keyCeiling: 100, keyConfig: "/nonexistent/primes.yaml"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range c.set {
				v.Set(k, val)
			}
			_, err := loadConfig(v)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("warn")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestRun_NoMismatchesAndReport(t *testing.T) {
	log, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "factors.yaml")

	sum, err := run(config{Ceiling: 1000, Workers: 3, LogLevel: "info", Report: path}, log)
	require.NoError(t, err)
	assert.Zero(t, sum.SieveMismatches)
	assert.Zero(t, sum.FactorMismatches)
	assert.Equal(t, 168, sum.Primes)
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, e.Level, e.Message)
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []reportEntry
	require.NoError(t, yaml.Unmarshal(raw, &entries))
	require.Len(t, entries, 100)
	assert.Equal(t, reportEntry{Target: 999_999, Factors: []int64{3, 3, 3, 7, 11, 13, 37}}, entries[0])
}

func TestRun_CeilingTooSmall(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := run(config{Ceiling: 5, Workers: 2}, log)
	assert.Error(t, err)
}
