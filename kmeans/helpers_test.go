// SPDX-License-Identifier: MIT
package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

// fromRows builds a *matrix.Dense or fails the test.
func fromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// blobs returns per points around each center, jittered within ±0.5.
func blobs(centers [][]float64, per int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, 0, len(centers)*per)
	for _, c := range centers {
		for i := 0; i < per; i++ {
			p := make([]float64, len(c))
			for j := range c {
				p[j] = c[j] + rng.Float64() - 0.5
			}
			out = append(out, p)
		}
	}

	return out
}

// requireGrouped asserts that consecutive runs of per points share a label
// and that different runs have different labels.
func requireGrouped(t *testing.T, assignment []int, groups, per int) {
	t.Helper()
	seen := map[int]bool{}
	for g := 0; g < groups; g++ {
		label := assignment[g*per]
		require.False(t, seen[label], "group %d reuses label %d", g, label)
		seen[label] = true
		for i := g * per; i < (g+1)*per; i++ {
			require.Equal(t, label, assignment[i], "point %d", i)
		}
	}
}
