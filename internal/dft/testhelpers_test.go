package dft

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomSplit returns n complex samples in [-1, 1) as split real/imag slices.
func randomSplit(n int, seed int64) (re, im []float64) {
	rng := rand.New(rand.NewSource(seed))

	re = make([]float64, n)
	im = make([]float64, n)

	for i := range n {
		re[i] = rng.Float64()*2 - 1
		im[i] = rng.Float64()*2 - 1
	}

	return re, im
}

// naiveDFT evaluates the transform with math.Sincos per term, independent
// of Table.
func naiveDFT(re, im []float64) (outRe, outIm []float64) {
	n := len(re)
	outRe = make([]float64, n)
	outIm = make([]float64, n)

	for k := range n {
		var sumRe, sumIm float64

		for s := range n {
			sn, c := math.Sincos(2 * math.Pi * float64((k*s)%n) / float64(n))
			sumRe += re[s]*c - im[s]*sn
			sumIm += re[s]*sn + im[s]*c
		}

		outRe[k] = sumRe / float64(n)
		outIm[k] = sumIm / float64(n)
	}

	return outRe, outIm
}

func requireBinsClose(t *testing.T, wantRe, wantIm, gotRe, gotIm []float64, tol float64) {
	t.Helper()

	require.Len(t, gotRe, len(wantRe))
	require.Len(t, gotIm, len(wantIm))

	for k := range wantRe {
		require.InDeltaf(t, wantRe[k], gotRe[k], tol, "real bin %d", k)
		require.InDeltaf(t, wantIm[k], gotIm[k], tol, "imag bin %d", k)
	}
}

func alloc(n int) (re, im []float64) {
	return make([]float64, n), make([]float64, n)
}
