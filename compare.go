package algodft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/internal/dft"
)

// CompareError returns the sum over the first size bins of
// |ref.Real[k]-out.Real[k]| + |ref.Imag[k]-out.Imag[k]|.
// No threshold is applied; callers compare the result against a tolerance.
func CompareError(ref, out Sequence, size int) (float64, error) {
	if size < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}

	if err := ref.validate(size); err != nil {
		return 0, fmt.Errorf("ref: %w", err)
	}

	if err := out.validate(size); err != nil {
		return 0, fmt.Errorf("out: %w", err)
	}

	return dft.SumAbsDiff(ref.Real[:size], ref.Imag[:size], out.Real[:size], out.Imag[:size]), nil
}
