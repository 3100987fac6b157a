package dft

import "gonum.org/v1/gonum/floats"

// SumAbsDiff returns Σ|refRe[k]-re[k]| + Σ|refIm[k]-im[k]|.
// All four slices must have the same length.
func SumAbsDiff(refRe, refIm, re, im []float64) float64 {
	return floats.Distance(refRe, re, 1) + floats.Distance(refIm, im, 1)
}
