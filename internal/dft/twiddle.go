package dft

import (
	"math"

	m "github.com/cwbudde/algo-dft/internal/math"
)

// Table holds cos and sin of 2π·k/N for k = 0..N-1.
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	n   int
	cos []float64
	sin []float64
}

// NewTable returns the twiddle table for an N-point transform, or nil if
// n <= 0.
func NewTable(n int) *Table {
	if n <= 0 {
		return nil
	}

	t := &Table{
		n:   n,
		cos: make([]float64, n),
		sin: make([]float64, n),
	}

	for k := range n {
		phase := m.TwoPi * float64(k) / float64(n)
		t.cos[k] = math.Cos(phase)
		t.sin[k] = math.Sin(phase)
	}

	return t
}

// Len returns N.
func (t *Table) Len() int {
	return t.n
}

// At returns the twiddle for the given step, reduced modulo N.
func (t *Table) At(step int) (c, s float64) {
	k := step % t.n
	if k < 0 {
		k += t.n
	}

	return t.cos[k], t.sin[k]
}

// Equal reports whether both tables hold bitwise identical values.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}

	if t.n != o.n {
		return false
	}

	for k := range t.n {
		if math.Float64bits(t.cos[k]) != math.Float64bits(o.cos[k]) ||
			math.Float64bits(t.sin[k]) != math.Float64bits(o.sin[k]) {
			return false
		}
	}

	return true
}
