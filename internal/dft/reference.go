package dft

// Reference computes a size-point DFT of src[0], src[stride], ... by direct
// summation and writes size bins to dst. The table step per sample is N/size,
// so size must divide N. Both sums are divided by N, not by size: when called
// on a decimated sub-sequence with size·stride == N the result is already
// scaled for the enclosing N-point transform.
//
// dst must not overlap src.
func Reference(t *Table, dstRe, dstIm, srcRe, srcIm []float64, size, stride int) {
	n := t.n
	step := n / size
	norm := float64(n)

	for bin := range size {
		var sumRe, sumIm float64

		idx := 0
		adv := bin * step

		for s := range size {
			re, im := srcRe[s*stride], srcIm[s*stride]
			c, sn := t.cos[idx], t.sin[idx]

			sumRe += re*c - im*sn
			sumIm += re*sn + im*c

			// adv < N, so a single subtraction keeps idx in range.
			idx += adv
			if idx >= n {
				idx -= n
			}
		}

		dstRe[bin] = sumRe / norm
		dstIm[bin] = sumIm / norm
	}
}
