// Package oracle adapts third-party FFT libraries to the engine's transform
// convention, X[k] = (1/N) Σ x[s]·exp(+2πi·k·s/N), so they can serve as
// independent cross-checks of the reference transform.
//
// Both libraries compute exp(-2πi·k·s/N) as their forward transform, so the
// adapters call the backward direction.
package oracle

import (
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Func transforms srcRe/srcIm into dstRe/dstIm. All slices have length N.
type Func func(dstRe, dstIm, srcRe, srcIm []float64)

// Gonum uses gonum's complex FFT. Sequence is unnormalized, so the result
// is scaled by 1/N here.
func Gonum(dstRe, dstIm, srcRe, srcIm []float64) {
	n := len(srcRe)

	// CmplxFFT keeps work buffers and is not safe for concurrent use, so each
	// call gets its own.
	plan := fourier.NewCmplxFFT(n)
	out := plan.Sequence(nil, pack(srcRe, srcIm))

	scale := 1 / float64(n)
	for k, v := range out {
		dstRe[k] = real(v) * scale
		dstIm[k] = imag(v) * scale
	}
}

// GoDSP uses go-dsp's IFFT, which already applies the 1/N factor.
func GoDSP(dstRe, dstIm, srcRe, srcIm []float64) {
	unpack(dstRe, dstIm, fft.IFFT(pack(srcRe, srcIm)))
}

func pack(re, im []float64) []complex128 {
	out := make([]complex128, len(re))
	for i := range re {
		out[i] = complex(re[i], im[i])
	}

	return out
}

func unpack(re, im []float64, v []complex128) {
	for k, c := range v {
		re[k] = real(c)
		im[k] = imag(c)
	}
}
