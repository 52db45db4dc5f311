// SPDX-License-Identifier: MIT
package spectral_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

// twoBlobs returns 2·per points: the first half around (0,0), the second
// around (50,50), jittered deterministically by seed.
func twoBlobs(per int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, 0, 2*per)
	for _, c := range []float64{0, 50} {
		for i := 0; i < per; i++ {
			pts = append(pts, []float64{c + rng.Float64()*0.5, c + rng.Float64()*0.5})
		}
	}

	return pts
}

// randomPoints returns n points in [0,1)^d.
func randomPoints(n, d int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, d)
		for j := range pts[i] {
			pts[i][j] = rng.Float64()
		}
	}

	return pts
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
