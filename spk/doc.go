// SPDX-License-Identifier: MIT

// Package spk is the single entry point of the spectral clustering engine.
//
// A caller picks a Goal and receives a tagged Result:
//
//	GoalAdjacency  points → W                    Result.Matrix
//	GoalDegree     points → D                    Result.Matrix
//	GoalLaplacian  points → L                    Result.Matrix
//	GoalEigen      symmetric A → sorted (λ, V)   Result.Eigen
//	GoalEmbedding  points → U (N×k)              Result.Matrix, Result.K
//	GoalClusters   points → assignment           Result.Clusters, Result.K
//
// Pipeline states, in order:
//
//	Loaded → GraphBuilt → DegreeBuilt → Normalized → Diagonalized →
//	Embedded → Seeded → Clustered
//
// A fatal condition aborts the request with a *StageError naming the state
// that could not be reached; errors.Is still matches the underlying sentinel
// (spectral.ErrSingularDegree, kmeans.ErrDegenerateInput, ...). Non-fatal
// conditions (Jacobi non-convergence, empty clusters) are returned as
// Result.Warnings next to a usable result.
//
// An Engine holds immutable Config, a zerolog.Logger and optional Prometheus
// collectors; it is safe for concurrent use. The context passed to Compute is
// checked between stages.
package spk
