// Package spectral is an in-memory normalized spectral clustering engine:
// from raw points to a similarity graph, its normalized Laplacian, a Jacobi
// eigen-decomposition, an eigengap-chosen embedding and a k-means++/Lloyd
// clustering of that embedding.
//
// What you get:
//   - Every stage as a plain exported function, usable and testable alone
//   - Deterministic results: fixed pivot tie-breaks, stable eigen ordering,
//     an explicit seed for k-means++
//   - Explicit failures: sentinel errors matched with errors.Is, and non-fatal
//     conditions surfaced as warnings instead of silent defaults
//
// Packages:
//
//	matrix/   — Dense matrix, validators, kernels, Jacobi eigensolver
//	spectral/ — adjacency, degree, normalized Laplacian, eigengap, embedding
//	kmeans/   — k-means++ seeding and Lloyd clustering
//	spk/      — goal-dispatched Compute, Config (YAML), zerolog logging,
//	            Prometheus metrics
//
// Quick pipeline sketch:
//
//	points ─▶ W ─▶ D ─▶ L ─▶ (λ, V) ─▶ k ─▶ U ─▶ seeds ─▶ assignment
//
// Most callers only need spk.Compute:
//
//	res, err := spk.Compute(ctx, spk.GoalClusters, points, 0)
package spectral
