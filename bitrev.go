package algodft

import (
	"fmt"

	m "github.com/cwbudde/algo-dft/internal/math"
)

// BitReverse returns i with its lower log2(limit) bits reversed. It is its own
// inverse: BitReverse(BitReverse(i, limit), limit) == i.
//
// Returns ErrInvalidLength if limit is not a positive power of 2 and
// ErrIndexOutOfRange if i is outside [0, limit).
func BitReverse(i, limit int) (int, error) {
	if !m.IsPowerOf2(limit) {
		return 0, fmt.Errorf("%w: %d is not a power of 2", ErrInvalidLength, limit)
	}

	if i < 0 || i >= limit {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, limit)
	}

	return m.BitReverseIndex(i, limit), nil
}
