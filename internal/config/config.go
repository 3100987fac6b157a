// Package config resolves the dftbench harness settings from defaults, an
// optional .env file, the process environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	m "github.com/cwbudde/algo-dft/internal/math"
	"github.com/cwbudde/algo-dft/internal/signal"
)

// Environment variable names.
const (
	EnvSize      = "DFTBENCH_SIZE"
	EnvCycles    = "DFTBENCH_CYCLES"
	EnvSeed      = "DFTBENCH_SEED"
	EnvInput     = "DFTBENCH_INPUT"
	EnvTolerance = "DFTBENCH_TOLERANCE"
	EnvPrint     = "DFTBENCH_PRINT"
	EnvOracles   = "DFTBENCH_ORACLES"
	EnvLogLevel  = "DFTBENCH_LOG_LEVEL"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the harness settings.
type Config struct {
	// Size is the transform length; a power of 2 >= 4.
	Size int
	// Cycles is how many times each fast transform is timed.
	Cycles int
	// Seed drives the random input generator.
	Seed int64
	// Input names the generator: random, sine or square.
	Input string
	// Tolerance is the accepted total error; 0 selects the size-scaled default.
	Tolerance float64
	// Print dumps the input and every output buffer.
	Print bool
	// Oracles adds the third-party transforms to the comparison.
	Oracles bool
	// LogLevel is debug, info, warn or error.
	LogLevel string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:     4 * 1024,
		Cycles:   100,
		Seed:     1,
		Input:    signal.KindRandom.String(),
		LogLevel: "info",
	}
}

// LoadDotEnv loads variables from path into the process environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("config: load %s: %w", path, err)
}

// ApplyEnv overrides c with any DFTBENCH_* variables found through lookup,
// which is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	parse := func(key string, set func(string) error) {
		v, ok := lookup(key)
		if !ok {
			return
		}

		if err := set(strings.TrimSpace(v)); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, v, err))
		}
	}

	parse(EnvSize, func(v string) (err error) { c.Size, err = strconv.Atoi(v); return err })
	parse(EnvCycles, func(v string) (err error) { c.Cycles, err = strconv.Atoi(v); return err })
	parse(EnvSeed, func(v string) (err error) { c.Seed, err = strconv.ParseInt(v, 10, 64); return err })
	parse(EnvTolerance, func(v string) (err error) { c.Tolerance, err = strconv.ParseFloat(v, 64); return err })
	parse(EnvPrint, func(v string) (err error) { c.Print, err = strconv.ParseBool(v); return err })
	parse(EnvOracles, func(v string) (err error) { c.Oracles, err = strconv.ParseBool(v); return err })
	str(EnvInput, &c.Input)
	str(EnvLogLevel, &c.LogLevel)

	return errors.Join(errs...)
}

// FromEnvironment returns Default overridden by path (if present) and the
// process environment.
func FromEnvironment(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := LoadDotEnv(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports every setting that is out of range.
func (c Config) Validate() error {
	var errs []error

	if !m.IsRadix4Chain(c.Size) {
		errs = append(errs, fmt.Errorf("%w: size %d is not a power of 2 >= 4", ErrInvalid, c.Size))
	}

	if c.Cycles < 1 {
		errs = append(errs, fmt.Errorf("%w: cycles %d < 1", ErrInvalid, c.Cycles))
	}

	if c.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("%w: tolerance %g < 0", ErrInvalid, c.Tolerance))
	}

	if _, err := signal.ParseKind(c.Input); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// InputKind returns the parsed Input.
func (c Config) InputKind() signal.Kind {
	k, _ := signal.ParseKind(c.Input)
	return k
}

// Level returns LogLevel as a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}

// LogValue groups the settings under one structured log attribute.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", c.Size),
		slog.Int("cycles", c.Cycles),
		slog.Int64("seed", c.Seed),
		slog.String("input", c.Input),
		slog.Float64("tolerance", c.Tolerance),
		slog.Bool("print", c.Print),
		slog.Bool("oracles", c.Oracles),
	)
}
