package algodft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/internal/dft"
	m "github.com/cwbudde/algo-dft/internal/math"
	"github.com/cwbudde/algo-dft/internal/oracle"
)

// Plan holds the transform length N and its twiddle table.
//
// A Plan is immutable after NewPlan and safe for concurrent use; any number
// of plans with different lengths may coexist. Every transform computes
//
//	X[k] = (1/N) Σ x[s]·exp(+2πi·k·s/N)
//
// so all strategies of one Plan agree up to floating-point rounding.
type Plan struct {
	n     int
	table *dft.Table
}

// NewPlan builds the twiddle table for length-n transforms.
// Returns ErrInvalidLength if n < 1.
func NewPlan(n int) (*Plan, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return &Plan{n: n, table: dft.NewTable(n)}, nil
}

// Len returns the transform length N.
func (p *Plan) Len() int {
	return p.n
}

// TwiddleAt returns cos and sin of 2π·step/N. step is reduced modulo N.
func (p *Plan) TwiddleAt(step int) (c, s float64) {
	return p.table.At(step)
}

// Supports reports whether strategy s can transform sequences of length N.
func (p *Plan) Supports(s Strategy) bool {
	switch s {
	case StrategyReference, StrategyGonum, StrategyGoDSP:
		return true
	case StrategyRecursive:
		return p.n >= 2 && p.n%2 == 0
	case StrategyIterative:
		return m.IsRadix4Chain(p.n)
	default:
		return false
	}
}

// Reference computes the transform by direct O(N²) summation.
// It is the correctness oracle for the fast strategies.
func (p *Plan) Reference(dst, src Sequence) error {
	return p.Transform(StrategyReference, dst, src)
}

// Recursive computes the transform by top-down radix-2 decimation in time
// with a 4-point closed-form floor. N must be even; halves of odd length are
// transformed directly.
func (p *Plan) Recursive(dst, src Sequence) error {
	return p.Transform(StrategyRecursive, dst, src)
}

// Iterative computes the transform bottom-up: a bit-reversed scatter of
// 4-point blocks followed by log2(N/4) butterfly passes. N must be 4·2^k.
func (p *Plan) Iterative(dst, src Sequence) error {
	return p.Transform(StrategyIterative, dst, src)
}

// Transform runs strategy s on the first N samples of src and writes N bins
// to dst. dst may be the same sequence as src.
//
// Returns ErrUnknownStrategy for an undefined strategy, ErrInvalidLength if
// the strategy does not support N, ErrNilSlice or ErrLengthMismatch for bad
// buffers.
func (p *Plan) Transform(s Strategy, dst, src Sequence) error {
	if !s.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, s)
	}

	if !p.Supports(s) {
		return fmt.Errorf("%w: %s transform of length %d", ErrInvalidLength, s, p.n)
	}

	if err := dst.validate(p.n); err != nil {
		return fmt.Errorf("dst: %w", err)
	}

	if err := src.validate(p.n); err != nil {
		return fmt.Errorf("src: %w", err)
	}

	if overlaps(dst, src) {
		src = src.Clone()
	}

	n := p.n
	dr, di := dst.Real[:n], dst.Imag[:n]
	sr, si := src.Real[:n], src.Imag[:n]

	switch s {
	case StrategyReference:
		dft.Reference(p.table, dr, di, sr, si, n, 1)
	case StrategyRecursive:
		dft.Recursive(p.table, dr, di, sr, si, n, 1)
	case StrategyIterative:
		dft.Iterative(p.table, dr, di, sr, si, n)
	case StrategyGonum:
		oracle.Gonum(dr, di, sr, si)
	case StrategyGoDSP:
		oracle.GoDSP(dr, di, sr, si)
	}

	return nil
}
