package dft

// Recursive computes a size-point DFT of src[0], src[stride], ... by
// decimation in time and writes size bins to dst.
//
// The even and odd samples are transformed into the lower and upper halves of
// dst, then merged with one butterfly pass. The split stops at a 4-point half,
// handled by Radix4, or at an odd half, handled by Reference.
//
// Preconditions: size is even and >= 2, size·stride == t.Len(), and dst does
// not overlap src. Recursion depth is log2 of the largest power of 2 dividing
// size.
func Recursive(t *Table, dstRe, dstIm, srcRe, srcIm []float64, size, stride int) {
	half := size / 2
	sub := stride * 2

	loRe, loIm := dstRe[:half], dstIm[:half]
	hiRe, hiIm := dstRe[half:size], dstIm[half:size]

	switch {
	case half&1 != 0:
		Reference(t, loRe, loIm, srcRe, srcIm, half, sub)
		Reference(t, hiRe, hiIm, srcRe[stride:], srcIm[stride:], half, sub)
	case half == 4:
		Radix4(loRe, loIm, srcRe, srcIm, sub)
		Radix4(hiRe, hiIm, srcRe[stride:], srcIm[stride:], sub)
	default:
		Recursive(t, loRe, loIm, srcRe, srcIm, half, sub)
		Recursive(t, hiRe, hiIm, srcRe[stride:], srcIm[stride:], half, sub)
	}

	// i·stride < N/2 for every i < half, so the table index never wraps.
	for i := range half {
		c, s := t.cos[i*stride], t.sin[i*stride]

		evenRe, evenIm := loRe[i], loIm[i]
		oddRe, oddIm := hiRe[i], hiIm[i]

		rotRe := oddRe*c - oddIm*s
		rotIm := oddRe*s + oddIm*c

		loRe[i] = evenRe + rotRe
		loIm[i] = evenIm + rotIm
		hiRe[i] = evenRe - rotRe
		hiIm[i] = evenIm - rotIm
	}
}
