// SPDX-License-Identifier: MIT
// Package matrix provides allocation-fresh kernels on any Matrix implementation:
// multiplication, transpose, subtraction, scaling, and the reductions used by the
// spectral pipeline. All functions perform strict fail-fast validation and never
// mutate their operands.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opSub       = "Sub"
	opScale     = "Scale"
	opRowSums   = "RowSums"
	opOffDiag   = "OffDiagonalSumSquares"
	opAllClose  = "AllClose"
	opSqDist    = "SquaredDistance"
	opJacobi    = "Jacobi"
	opSortEigen = "SortEigen"
	opPivot     = "MaxOffDiagonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i-k-j loop order over flat buffers so the inner loop streams
//     contiguous rows of B and C.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, k, j int
		aik     float64
		crow    []float64
		brow    []float64
	)
	for i = 0; i < ad.r; i++ {
		crow = out.rowView(i)
		for k = 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			brow = bd.rowView(k)
			for j = 0; j < bd.c; j++ {
				crow[j] += aik * brow[j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(md.c, md.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < md.r; i++ {
		for j = 0; j < md.c; j++ {
			out.data[j*out.c+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}

// Sub computes the element-wise difference C = A − B.
// Complexity: O(r·c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := ad.clone()
	floats.Sub(out.data, bd.data)

	return out, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := md.clone()
	floats.Scale(alpha, out.data)

	return out, nil
}

// RowSums returns Σ_j m[i,j] for each row i, summed left to right.
// Complexity: O(r·c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]float64, md.r)
	for i := 0; i < md.r; i++ {
		out[i] = floats.Sum(md.rowView(i))
	}

	return out, nil
}

// OffDiagonalSumSquares returns Σ_{i≠j} m[i,j]², the Jacobi convergence measure.
// Complexity: O(n²).
func OffDiagonalSumSquares(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opOffDiag, err)
	}
	md, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opOffDiag, err)
	}

	return md.offDiagonalSumSquares(), nil
}

// offDiagonalSumSquares is the unchecked kernel behind OffDiagonalSumSquares.
func (m *Dense) offDiagonalSumSquares() float64 {
	var (
		sum  float64
		i, j int
		v    float64
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if i == j {
				continue
			}
			v = m.data[i*m.c+j]
			sum += v * v
		}
	}

	return sum
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds element-wise.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf for bad tolerances.
// Complexity: O(r·c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if math.IsNaN(rtol) || math.IsNaN(atol) || rtol < 0 || atol < 0 {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	ad, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range ad.data {
		if math.Abs(ad.data[i]-bd.data[i]) > atol+rtol*math.Abs(bd.data[i]) {
			return false, nil
		}
	}

	return true, nil
}

// SquaredDistance returns Σ (x_i − y_i)², the squared Euclidean distance.
// Errors: ErrDimensionMismatch when lengths differ.
func SquaredDistance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, matrixErrorf(opSqDist, fmt.Errorf("len %d vs %d: %w", len(x), len(y), ErrDimensionMismatch))
	}

	return squaredDistance(x, y), nil
}

// squaredDistance is the unchecked kernel; len(x) must equal len(y).
func squaredDistance(x, y []float64) float64 {
	var sum, d float64
	for i := range x {
		d = x[i] - y[i]
		sum += d * d
	}

	return sum
}

// Norm returns the Euclidean (L2) norm of x.
func Norm(x []float64) float64 {
	return floats.Norm(x, 2)
}
