package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dft/internal/signal"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4096, cfg.Size)
	assert.Equal(t, signal.KindRandom, cfg.InputKind())
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		EnvSize:      " 1024 ",
		EnvCycles:    "7",
		EnvSeed:      "-3",
		EnvInput:     "sine",
		EnvTolerance: "1e-6",
		EnvPrint:     "true",
		EnvOracles:   "1",
		EnvLogLevel:  "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Size:      1024,
		Cycles:    7,
		Seed:      -3,
		Input:     "sine",
		Tolerance: 1e-6,
		Print:     true,
		Oracles:   true,
		LogLevel:  "debug",
	}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestApplyEnvReportsEveryBadValue(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		EnvSize:   "big",
		EnvCycles: "12",
		EnvPrint:  "maybe",
	}))

	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), EnvSize)
	assert.Contains(t, err.Error(), EnvPrint)
	assert.Equal(t, 12, cfg.Cycles)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"size not power of 2", func(c *Config) { c.Size = 1000 }},
		{"size below 4", func(c *Config) { c.Size = 2 }},
		{"zero cycles", func(c *Config) { c.Cycles = 0 }},
		{"negative tolerance", func(c *Config) { c.Tolerance = -1 }},
		{"unknown input", func(c *Config) { c.Input = "chirp" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

// Not parallel: mutates the process environment.
func TestFromEnvironmentReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.env")
	require.NoError(t, os.WriteFile(path, []byte("DFTBENCH_SIZE=256\nDFTBENCH_INPUT=square\n"), 0o600))

	t.Setenv(EnvCycles, "5")
	// Registered with t.Setenv so the values loaded from the file are
	// restored after the test.
	t.Setenv(EnvSize, "")
	t.Setenv(EnvInput, "")
	require.NoError(t, os.Unsetenv(EnvSize))
	require.NoError(t, os.Unsetenv(EnvInput))

	cfg, err := FromEnvironment(path)
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Size)
	assert.Equal(t, 5, cfg.Cycles)
	assert.Equal(t, signal.KindSquare, cfg.InputKind())
	require.NoError(t, cfg.Validate())
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	v := Default().LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	attrs := v.Group()
	require.NotEmpty(t, attrs)
	assert.Equal(t, "size", attrs[0].Key)
	assert.Equal(t, int64(4096), attrs[0].Value.Int64())
}
