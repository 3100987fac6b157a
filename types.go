package algodft

import "fmt"

// Sequence is a complex-valued discrete sequence stored as separate real and
// imaginary parts of equal length. Index order is sample order for inputs
// and frequency-bin order for outputs.
type Sequence struct {
	Real []float64
	Imag []float64
}

// NewSequence allocates a zeroed sequence of length n.
func NewSequence(n int) Sequence {
	return Sequence{
		Real: make([]float64, n),
		Imag: make([]float64, n),
	}
}

// Len returns the number of samples, or -1 if the parts differ in length.
func (s Sequence) Len() int {
	if len(s.Real) != len(s.Imag) {
		return -1
	}

	return len(s.Real)
}

// Clone returns a deep copy of s.
func (s Sequence) Clone() Sequence {
	return Sequence{
		Real: append([]float64(nil), s.Real...),
		Imag: append([]float64(nil), s.Imag...),
	}
}

// At returns sample k as a complex number.
func (s Sequence) At(k int) complex128 {
	return complex(s.Real[k], s.Imag[k])
}

// validate checks that s is non-nil, well formed, and holds at least n samples.
func (s Sequence) validate(n int) error {
	if s.Real == nil || s.Imag == nil {
		return ErrNilSlice
	}

	if len(s.Real) != len(s.Imag) {
		return fmt.Errorf("%w: real part has %d samples, imaginary part %d",
			ErrLengthMismatch, len(s.Real), len(s.Imag))
	}

	if len(s.Real) < n {
		return fmt.Errorf("%w: have %d samples, need %d", ErrLengthMismatch, len(s.Real), n)
	}

	return nil
}

// overlaps reports whether any part of a shares its first element with any
// part of b. Partially overlapping buffers are not detected.
func overlaps(a, b Sequence) bool {
	for _, x := range [][]float64{a.Real, a.Imag} {
		for _, y := range [][]float64{b.Real, b.Imag} {
			if len(x) > 0 && len(y) > 0 && &x[0] == &y[0] {
				return true
			}
		}
	}

	return false
}
