package algodft

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm a Plan uses for a transform.
type Strategy uint8

const (
	// StrategyReference is the O(N²) direct transform.
	StrategyReference Strategy = iota
	// StrategyRecursive is the top-down decimation-in-time transform.
	StrategyRecursive
	// StrategyIterative is the bottom-up bit-reversal and butterfly transform.
	StrategyIterative
	// StrategyGonum delegates to gonum's dsp/fourier package.
	StrategyGonum
	// StrategyGoDSP delegates to github.com/mjibson/go-dsp/fft.
	StrategyGoDSP

	strategyCount
)

var strategyNames = [strategyCount]string{
	StrategyReference: "reference",
	StrategyRecursive: "recursive",
	StrategyIterative: "iterative",
	StrategyGonum:     "gonum",
	StrategyGoDSP:     "godsp",
}

// FastStrategies are the strategies implemented by this package that are
// verified against StrategyReference.
var FastStrategies = []Strategy{StrategyRecursive, StrategyIterative}

// OracleStrategies are the third-party transforms used as cross-checks.
var OracleStrategies = []Strategy{StrategyGonum, StrategyGoDSP}

// String returns the strategy name.
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}

	return strategyNames[s]
}

func (s Strategy) valid() bool {
	return s < strategyCount
}

// ParseStrategy maps a name such as "recursive" to its Strategy.
// Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == want {
			return Strategy(s), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Transformer is one transform strategy bound to a Plan.
type Transformer interface {
	// Transform writes the transform of src to dst. dst may equal src.
	Transform(dst, src Sequence) error
	// Strategy reports the algorithm in use.
	Strategy() Strategy
}

type planTransformer struct {
	plan     *Plan
	strategy Strategy
}

func (t planTransformer) Transform(dst, src Sequence) error {
	return t.plan.Transform(t.strategy, dst, src)
}

func (t planTransformer) Strategy() Strategy {
	return t.strategy
}

// Transformer binds strategy s to p.
// Returns ErrUnknownStrategy or ErrInvalidLength if s cannot run on p.
func (p *Plan) Transformer(s Strategy) (Transformer, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, s)
	}

	if !p.Supports(s) {
		return nil, fmt.Errorf("%w: %s transform of length %d", ErrInvalidLength, s, p.n)
	}

	return planTransformer{plan: p, strategy: s}, nil
}
