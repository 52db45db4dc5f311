// SPDX-License-Identifier: MIT
package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/spectral"
)

func TestAdjacency_Known(t *testing.T) {
	t.Parallel()

	w, err := spectral.Adjacency([][]float64{{0, 0}, {3, 4}, {0, 0}})
	require.NoError(t, err)
	require.Equal(t, 3, w.Rows())

	e := math.Exp(-2.5)
	require.Equal(t, [][]float64{
		{0, e, 1},
		{e, 0, e},
		{1, e, 0},
	}, w.ToRows())
}

// TestAdjacency_SymmetricZeroDiagonal checks W[i][j] == W[j][i] bit for bit,
// W[i][i] == 0 and all weights in (0,1].
func TestAdjacency_SymmetricZeroDiagonal(t *testing.T) {
	t.Parallel()

	pts := randomPoints(20, 3, 11)
	w, err := spectral.Adjacency(pts)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.Zero(t, mustAt(t, w, i, i))
		for j := i + 1; j < 20; j++ {
			wij := mustAt(t, w, i, j)
			require.Equal(t, wij, mustAt(t, w, j, i))
			require.Greater(t, wij, 0.0)
			require.LessOrEqual(t, wij, 1.0)
		}
	}
}

func TestAdjacency_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	pts := randomPoints(64, 4, 5)
	seq, err := spectral.Adjacency(pts, spectral.WithWorkers(1))
	require.NoError(t, err)
	par, err := spectral.Adjacency(pts, spectral.WithParallelThreshold(0), spectral.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, seq.ToRows(), par.ToRows())
}

func TestAdjacency_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	pts := [][]float64{{1, 2}, {3, 4}}
	_, err := spectral.Adjacency(pts)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, pts)
}

func TestAdjacency_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := map[string][][]float64{
		"nil":    nil,
		"single": {{1, 2}},
		"empty":  {{}, {}},
		"ragged": {{1, 2}, {3}},
		"nan":    {{1, 2}, {math.NaN(), 0}},
		"inf":    {{math.Inf(1), 2}, {0, 0}},
	}
	for name, pts := range cases {
		_, err := spectral.Adjacency(pts)
		require.ErrorIs(t, err, spectral.ErrInvalidInput, name)
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { spectral.WithEpsilon(-1) })
	require.Panics(t, func() { spectral.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { spectral.WithParallelThreshold(-1) })
	require.Panics(t, func() { spectral.WithWorkers(-1) })
}
