package signal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindRandom, KindSine, KindSquare} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Sine ")
	require.NoError(t, err)
	assert.Equal(t, KindSine, got)

	_, err = ParseKind("noise")
	require.Error(t, err)
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestRandomIsQuantizedAndSeeded(t *testing.T) {
	t.Parallel()

	const n = 512

	re1, im1 := make([]float64, n), make([]float64, n)
	re2, im2 := make([]float64, n), make([]float64, n)

	Fill(KindRandom, re1, im1, 42)
	Random(rand.New(rand.NewSource(42)), re2, im2)

	assert.Equal(t, re1, re2)
	assert.Equal(t, im1, im2)

	for i := range n {
		for _, v := range []float64{re1[i], im1[i]} {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)

			hundredths := v * 100
			require.InDelta(t, math.Round(hundredths), hundredths, 1e-9)
		}
	}
}

func TestSine(t *testing.T) {
	t.Parallel()

	re, im := make([]float64, 16), make([]float64, 16)
	for i := range im {
		im[i] = 7
	}

	Sine(re, im, 1)

	assert.InDelta(t, 0, re[0], 1e-15)
	assert.InDelta(t, 1, re[4], 1e-15)
	assert.InDelta(t, -1, re[12], 1e-15)
	assert.Equal(t, make([]float64, 16), im)
}

func TestSquare(t *testing.T) {
	t.Parallel()

	re, im := make([]float64, 128), make([]float64, 128)
	Fill(KindSquare, re, im, 0)

	assert.Equal(t, 1.0, re[0])
	assert.Equal(t, 1.0, re[31])
	assert.Equal(t, -1.0, re[32])
	assert.Equal(t, -1.0, re[63])
	assert.Equal(t, 1.0, re[64])
	assert.Equal(t, make([]float64, 128), im)
}
