package dft

// Radix4 computes the 4-point DFT of src[0], src[stride], src[2·stride],
// src[3·stride] without table lookups and writes 4 bins to dst, each divided
// by 4·stride. Multiplying by ±i only swaps components, so bins 1 and 3 are
// sign patterns of the inputs.
//
// dst must not overlap the four source samples.
func Radix4(dstRe, dstIm, srcRe, srcIm []float64, stride int) {
	r0, r1, r2, r3 := srcRe[0], srcRe[stride], srcRe[2*stride], srcRe[3*stride]
	i0, i1, i2, i3 := srcIm[0], srcIm[stride], srcIm[2*stride], srcIm[3*stride]

	total := float64(stride * 4)

	_ = dstRe[3]
	_ = dstIm[3]

	dstRe[0] = (r0 + r1 + r2 + r3) / total
	dstIm[0] = (i0 + i1 + i2 + i3) / total

	// x0 + i·x1 - x2 - i·x3
	dstRe[1] = (r0 - i1 - r2 + i3) / total
	dstIm[1] = (i0 + r1 - i2 - r3) / total

	dstRe[2] = (r0 - r1 + r2 - r3) / total
	dstIm[2] = (i0 - i1 + i2 - i3) / total

	// x0 - i·x1 - x2 + i·x3
	dstRe[3] = (r0 + i1 - r2 - i3) / total
	dstIm[3] = (i0 - r1 - i2 + r3) / total
}
