package algodft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/internal/dft"
)

// ReferenceStrided transforms the decimated sub-sequence src[0], src[stride],
// ..., src[(size-1)·stride] and writes size bins to dst[0:size].
//
// size·stride must equal the Plan length. The bins are divided by N rather
// than by size, which is the weight the sub-transform carries inside the full
// N-point transform; multiply by stride to get the standalone size-point
// transform.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or size·stride != N.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan) ReferenceStrided(dst, src Sequence, size, stride int) error {
	return p.transformStrided(StrategyReference, dst, src, size, stride)
}

// RecursiveStrided is the recursive counterpart of ReferenceStrided.
// size must additionally be even.
func (p *Plan) RecursiveStrided(dst, src Sequence, size, stride int) error {
	return p.transformStrided(StrategyRecursive, dst, src, size, stride)
}

func (p *Plan) transformStrided(s Strategy, dst, src Sequence, size, stride int) error {
	err := p.validateStrided(dst, src, size, stride)
	if err != nil {
		return err
	}

	if s == StrategyRecursive && (size < 2 || size%2 != 0) {
		return fmt.Errorf("%w: recursive sub-transform of length %d", ErrInvalidLength, size)
	}

	if overlaps(dst, src) {
		src = src.Clone()
	}

	dr, di := dst.Real[:size], dst.Imag[:size]

	switch s {
	case StrategyRecursive:
		dft.Recursive(p.table, dr, di, src.Real, src.Imag, size, stride)
	default:
		dft.Reference(p.table, dr, di, src.Real, src.Imag, size, stride)
	}

	return nil
}

func (p *Plan) validateStrided(dst, src Sequence, size, stride int) error {
	if dst.Real == nil || dst.Imag == nil || src.Real == nil || src.Imag == nil {
		return ErrNilSlice
	}

	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}

	if stride < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}

	// Division keeps the check free of overflow for large stride values.
	if p.n%stride != 0 || p.n/stride != size {
		return fmt.Errorf("%w: size %d × stride %d != plan length %d", ErrInvalidStride, size, stride, p.n)
	}

	required := 1 + (size-1)*stride
	if err := src.validate(required); err != nil {
		return fmt.Errorf("src: %w", err)
	}

	if err := dst.validate(size); err != nil {
		return fmt.Errorf("dst: %w", err)
	}

	return nil
}
