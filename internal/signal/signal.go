// Package signal fills split real/imaginary buffers with test inputs.
package signal

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Kind selects an input generator.
type Kind uint8

const (
	// KindRandom draws real and imaginary parts from {0, 0.01, ..., 1}.
	KindRandom Kind = iota
	// KindSine is a real sine with Cycles periods over the buffer.
	KindSine
	// KindSquare is a real ±1 square wave with period 64.
	KindSquare
)

// DefaultCycles is the number of sine periods used by KindSine.
const DefaultCycles = 3

// String returns the generator name.
func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindSine:
		return "sine"
	case KindSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseKind maps a generator name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "":
		return KindRandom, nil
	case "sine":
		return KindSine, nil
	case "square":
		return KindSquare, nil
	default:
		return 0, fmt.Errorf("signal: unknown input kind %q", name)
	}
}

// Fill writes the selected input into re and im, which must have equal length.
func Fill(kind Kind, re, im []float64, seed int64) {
	switch kind {
	case KindSine:
		Sine(re, im, DefaultCycles)
	case KindSquare:
		Square(re, im)
	default:
		Random(rand.New(rand.NewSource(seed)), re, im)
	}
}

// Random fills both parts with values from {0, 0.01, ..., 1}.
func Random(rng *rand.Rand, re, im []float64) {
	for i := range re {
		re[i] = float64(rng.Intn(101)) / 100
		im[i] = float64(rng.Intn(101)) / 100
	}
}

// Sine sets re[i] = sin(2π·cycles·i/N) and im to zero.
func Sine(re, im []float64, cycles int) {
	n := float64(len(re))

	for i := range re {
		re[i] = math.Sin(2 * math.Pi * float64(cycles) * float64(i) / n)
		im[i] = 0
	}
}

// Square sets re to +1 for i%64 < 32 and -1 otherwise, and im to zero.
func Square(re, im []float64) {
	for i := range re {
		if i%64 < 32 {
			re[i] = 1
		} else {
			re[i] = -1
		}

		im[i] = 0
	}
}
