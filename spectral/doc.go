// SPDX-License-Identifier: MIT

// Package spectral builds the graph-side stages of normalized spectral clustering.
//
// Stages, in pipeline order:
//
//	points ──Adjacency──▶ W ──Degree──▶ D ──NormalizedLaplacian(D,W)──▶ L
//	sorted λ ──Eigengap──▶ k        sorted V ──Embed(k)──▶ U (N×k)
//
// Each stage is a pure function of its inputs: nothing is cached between calls
// and inputs are never mutated. Eigen-decomposition itself lives in the matrix
// package (matrix.Jacobi / matrix.SortEigen); k-means lives in kmeans.
//
// Similarity kernel:
//
//	W[i][j] = exp(−‖xᵢ − xⱼ‖₂ / 2)   for i ≠ j,   W[i][i] = 0.
//
// Normalized Laplacian:
//
//	L = I − D^(−1/2) · W · D^(−1/2)
//
// A point whose similarity to every other point underflows to zero has a zero
// degree; D^(−1/2) is then undefined and NormalizedLaplacian fails with
// ErrSingularDegree instead of producing NaN.
package spectral
