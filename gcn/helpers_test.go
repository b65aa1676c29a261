package gcn_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphconv/matrix"
	"github.com/stretchr/testify/require"
)

// randomAdjacency returns a symmetric 0/1 adjacency without self-loops.
func randomAdjacency(t testing.TB, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	a, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(2) == 0 {
				continue
			}
			require.NoError(t, a.Set(i, j, 1))
			require.NoError(t, a.Set(j, i, 1))
		}
	}

	return a
}

// randomFeatures returns an r×c matrix with entries in [-5, 5).
func randomFeatures(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	x, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, x.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*10 - 5
	}))

	return x
}
