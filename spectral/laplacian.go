// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// NormalizedLaplacian computes L = I − D^(−1/2)·W·D^(−1/2).
//
// Implementation:
//   - Stage 1: D and W must be square and of equal shape.
//   - Stage 2: sᵢ = 1/√D[i][i]; fail with ErrSingularDegree on the first i
//     whose degree is ≤ epsilon. Only the diagonal of D is read.
//   - Stage 3: fill the upper triangle L[i][j] = δᵢⱼ − sᵢ·W[i][j]·sⱼ and mirror
//     it, so L is exactly symmetric regardless of rounding order.
//
// Errors:
//   - ErrSingularDegree (wrapped with the row index).
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func NormalizedLaplacian(d, w matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, stageErrorf(opLaplacian, err)
	}
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, stageErrorf(opLaplacian, err)
	}
	if err := matrix.ValidateSameShape(d, w); err != nil {
		return nil, stageErrorf(opLaplacian, err)
	}

	n := d.Rows()
	inv := make([]float64, n)
	var (
		i, j int
		dii  float64
		wij  float64
		lij  float64
		err  error
	)
	for i = 0; i < n; i++ {
		if dii, err = d.At(i, i); err != nil {
			return nil, stageErrorf(opLaplacian, err)
		}
		if !(dii > o.eps) { // also catches NaN
			return nil, rowErrorf(opLaplacian, i, fmt.Errorf("degree %g ≤ %g: %w", dii, o.eps, ErrSingularDegree))
		}
		inv[i] = 1 / math.Sqrt(dii)
	}

	l, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, stageErrorf(opLaplacian, err)
	}
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if wij, err = w.At(i, j); err != nil {
				return nil, stageErrorf(opLaplacian, err)
			}
			lij = -inv[i] * wij * inv[j]
			if i == j {
				lij += 1
			}
			if err = l.Set(i, j, lij); err != nil {
				return nil, rowErrorf(opLaplacian, i, err)
			}
			if err = l.Set(j, i, lij); err != nil {
				return nil, rowErrorf(opLaplacian, j, err)
			}
		}
	}

	return l, nil
}

// Laplacian chains Adjacency → Degree → NormalizedLaplacian for raw points.
func Laplacian(points [][]float64, opts ...Option) (*matrix.Dense, error) {
	w, err := Adjacency(points, opts...)
	if err != nil {
		return nil, err
	}
	d, err := Degree(w)
	if err != nil {
		return nil, err
	}

	return NormalizedLaplacian(d, w, opts...)
}
