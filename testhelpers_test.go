package algodft

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Shared test helper functions used across multiple test files

func randomSequence(n int, seed int64) Sequence {
	rng := rand.New(rand.NewSource(seed))
	s := NewSequence(n)

	for i := range n {
		s.Real[i] = float64(rng.Intn(101)) / 100
		s.Imag[i] = float64(rng.Intn(101)) / 100
	}

	return s
}

func mustPlan(t testing.TB, n int) *Plan {
	t.Helper()

	plan, err := NewPlan(n)
	require.NoError(t, err)

	return plan
}

func requireSequenceClose(t *testing.T, want, got Sequence, tol float64) {
	t.Helper()

	require.Equal(t, want.Len(), got.Len())

	for k := range want.Real {
		require.InDeltaf(t, want.Real[k], got.Real[k], tol, "real bin %d", k)
		require.InDeltaf(t, want.Imag[k], got.Imag[k], tol, "imag bin %d", k)
	}
}
