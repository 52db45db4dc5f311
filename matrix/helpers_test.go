// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) ingestion path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// NewFilledDense builds an r×c matrix from row-major values.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c)
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, vals[i*c+j])
		}
	}

	return m
}

// RandomSymmetric returns a deterministic n×n symmetric matrix with entries in [-1,1).
func RandomSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := 2*rng.Float64() - 1
			MustSet(t, m, i, j, v)
			MustSet(t, m, j, i, v)
		}
	}

	return m
}

// propOrthonormal asserts VᵀV ≈ I within tol.
func propOrthonormal(t *testing.T, v matrix.Matrix, tol float64) {
	t.Helper()
	vt, err := matrix.Transpose(v)
	require.NoError(t, err)
	vtv, err := matrix.Mul(vt, v)
	require.NoError(t, err)
	n := v.Cols()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, MustAt(t, vtv, i, j), tol, "VᵀV[%d,%d]", i, j)
		}
	}
}

// propDiagonalized asserts VᵀAV ≈ diag(vals) within tol.
func propDiagonalized(t *testing.T, a, v matrix.Matrix, vals []float64, tol float64) {
	t.Helper()
	vt, err := matrix.Transpose(v)
	require.NoError(t, err)
	av, err := matrix.Mul(a, v)
	require.NoError(t, err)
	d, err := matrix.Mul(vt, av)
	require.NoError(t, err)
	n := a.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = vals[i]
			}
			require.InDelta(t, want, MustAt(t, d, i, j), tol, "VᵀAV[%d,%d]", i, j)
		}
	}
}

// requireSortedAscending asserts xs is non-decreasing.
func requireSortedAscending(t *testing.T, xs []float64) {
	t.Helper()
	for i := 1; i < len(xs); i++ {
		require.LessOrEqual(t, xs[i-1], xs[i], "values[%d] > values[%d]", i-1, i)
	}
}

// isFinite reports whether every entry of m is finite.
func isFinite(t *testing.T, m matrix.Matrix) bool {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v := MustAt(t, m, i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
