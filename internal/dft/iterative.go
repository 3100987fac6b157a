package dft

import m "github.com/cwbudde/algo-dft/internal/math"

// Iterative computes a size-point DFT bottom-up and writes size bins to dst.
//
// The first phase runs Radix4 on each of the size/4 interleaved 4-sample
// blocks and stores block i at bit-reversed block position, which applies the
// full bit-reversal permutation through output placement. The second phase
// runs in-place butterfly passes of width 8, 16, ..., size, with the twiddle
// step halving on each pass.
//
// Preconditions: size == t.Len() == 4·2^k and dst does not overlap src.
func Iterative(t *Table, dstRe, dstIm, srcRe, srcIm []float64, size int) {
	blocks := size / 4

	for i := range blocks {
		off := m.BitReverseIndex(i, blocks) * 4
		Radix4(dstRe[off:off+4], dstIm[off:off+4], srcRe[i:], srcIm[i:], blocks)
	}

	for width, step := 8, t.n/8; width <= size; width, step = width*2, step/2 {
		half := width / 2

		for start := 0; start < size; start += width {
			loRe, loIm := dstRe[start:start+half], dstIm[start:start+half]
			hiRe, hiIm := dstRe[start+half:start+width], dstIm[start+half:start+width]

			for j := range half {
				c, s := t.cos[j*step], t.sin[j*step]

				rotRe := hiRe[j]*c - hiIm[j]*s
				rotIm := hiRe[j]*s + hiIm[j]*c

				hiRe[j] = loRe[j] - rotRe
				hiIm[j] = loIm[j] - rotIm
				loRe[j] += rotRe
				loIm[j] += rotIm
			}
		}
	}
}
