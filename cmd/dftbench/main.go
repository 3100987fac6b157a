// Command dftbench times the recursive and iterative transforms against the
// direct reference transform and reports the total error of each.
//
//	dftbench [flags] [SIZE [CYCLES]]
//
// Settings are read from defaults, then a .env file, then DFTBENCH_*
// environment variables, then flags, then the positional arguments.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mdobak/go-xerrors"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/config"
	"github.com/cwbudde/algo-dft/internal/cpu"
	"github.com/cwbudde/algo-dft/internal/report"
	"github.com/cwbudde/algo-dft/internal/signal"
)

const (
	exitOK = iota
	exitFail
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "usage: dftbench [flags] [SIZE [CYCLES]]")

		return exitUsage
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration resolved", slog.Any("config", cfg))

	ok, err := bench(cfg, logger, stdout)
	if err != nil {
		logger.Error("benchmark failed", slog.Any("error", xerrors.New(err)))
		return exitFail
	}

	if !ok {
		logger.Warn("fast transform diverged from reference", slog.Int("size", cfg.Size))
		return exitFail
	}

	return exitOK
}

func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	def := config.Default()

	fs := flag.NewFlagSet("dftbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		envFile   = fs.String("env", ".env", "dotenv file with DFTBENCH_* settings")
		size      = fs.Int("size", def.Size, "transform size, a power of 2 >= 4")
		cycles    = fs.Int("cycles", def.Cycles, "timed repetitions per fast transform")
		seed      = fs.Int64("seed", def.Seed, "random input seed")
		input     = fs.String("input", def.Input, "input signal: random, sine, square")
		tolerance = fs.Float64("tol", def.Tolerance, "accepted total error, 0 for 1e-9*size")
		dump      = fs.Bool("print", def.Print, "print input and output buffers")
		oracles   = fs.Bool("oracles", def.Oracles, "also time gonum and go-dsp")
		logLevel  = fs.String("log-level", def.LogLevel, "debug, info, warn or error")
	)

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg, err := config.FromEnvironment(*envFile)
	if err != nil {
		return cfg, err
	}

	// Only flags given on the command line override the environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "cycles":
			cfg.Cycles = *cycles
		case "seed":
			cfg.Seed = *seed
		case "input":
			cfg.Input = *input
		case "tol":
			cfg.Tolerance = *tolerance
		case "print":
			cfg.Print = *dump
		case "oracles":
			cfg.Oracles = *oracles
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	rest := fs.Args()
	if len(rest) > 2 {
		return cfg, fmt.Errorf("too many arguments: %v", rest)
	}

	positional := []*int{&cfg.Size, &cfg.Cycles}
	for i, arg := range rest {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return cfg, fmt.Errorf("argument %d: %w", i+1, err)
		}

		*positional[i] = v
	}

	return cfg, cfg.Validate()
}

func bench(cfg config.Config, logger *slog.Logger, stdout io.Writer) (bool, error) {
	n := cfg.Size

	plan, err := algodft.NewPlan(n)
	if err != nil {
		return false, err
	}

	src := algodft.NewSequence(n)
	signal.Fill(cfg.InputKind(), src.Real, src.Imag, cfg.Seed)

	tol := cfg.Tolerance
	if tol == 0 {
		tol = algodft.DefaultTolerance(n)
	}

	fmt.Fprintf(stdout, "Transform of %5d %s complex numbers\n", n, cfg.InputKind())
	fmt.Fprintln(stdout, "=========================================")
	fmt.Fprintf(stdout, "cpu: %s\n", cpu.DetectFeatures())

	if cfg.Print {
		if err := report.Dump(stdout, src.Real, src.Imag, "input"); err != nil {
			return false, err
		}
	}

	ref := algodft.NewSequence(n)
	start := time.Now()

	if err := plan.Reference(ref, src); err != nil {
		return false, fmt.Errorf("reference: %w", err)
	}

	timings := []report.Timing{{
		Name:    algodft.StrategyReference.String(),
		Cycles:  1,
		Elapsed: time.Since(start),
		Error:   -1,
	}}

	if cfg.Print {
		if err := report.Dump(stdout, ref.Real, ref.Imag, "reference"); err != nil {
			return false, err
		}
	}

	strategies := append([]algodft.Strategy(nil), algodft.FastStrategies...)
	if cfg.Oracles {
		strategies = append(strategies, algodft.OracleStrategies...)
	}

	allPass := true
	out := algodft.NewSequence(n)

	for _, s := range strategies {
		tr, err := plan.Transformer(s)
		if err != nil {
			return false, err
		}

		start := time.Now()

		for range cfg.Cycles {
			if err := tr.Transform(out, src); err != nil {
				return false, fmt.Errorf("%s: %w", s, err)
			}
		}

		elapsed := time.Since(start)

		total, err := algodft.CompareError(ref, out, n)
		if err != nil {
			return false, fmt.Errorf("%s: %w", s, err)
		}

		pass := total <= tol
		allPass = allPass && pass

		logger.Debug("transform timed",
			slog.String("strategy", s.String()),
			slog.Int("cycles", cfg.Cycles),
			slog.Duration("elapsed", elapsed),
			slog.Float64("error", total))

		timings = append(timings, report.Timing{
			Name:    s.String(),
			Cycles:  cfg.Cycles,
			Elapsed: elapsed,
			Error:   total,
			Pass:    pass,
		})

		if cfg.Print {
			if err := report.Dump(stdout, out.Real, out.Imag, s.String()); err != nil {
				return false, err
			}
		}
	}

	if err := report.WriteTimings(stdout, timings); err != nil {
		return false, err
	}

	return allPass, nil
}
