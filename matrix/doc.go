// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// spectral clustering pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     errors instead of panicking.
//   - Allocation-fresh kernels (Mul, Transpose, Sub, Scale) and reductions
//     (RowSums, OffDiagonalSumSquares) that never mutate their operands.
//   - Jacobi, a cyclic-by-largest-pivot eigensolver for real symmetric matrices
//     with deterministic pivot tie-breaking, and SortEigen which orders the
//     resulting pairs ascending with a stable index tie-break.
//
// Determinism is a hard requirement throughout: loops run in fixed row-major
// order, there is no map iteration and no hidden randomness, so equal inputs
// produce bit-identical outputs.
//
// See the examples in this package for usage patterns.
package matrix
