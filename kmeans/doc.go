// SPDX-License-Identifier: MIT

// Package kmeans clusters row vectors with k-means++ seeding followed by
// Lloyd's assign/update iteration.
//
// Both stages are deterministic:
//   - Seed draws from a private math/rand source created from the caller's
//     seed, so equal (points, k, seed) always yield equal indices.
//   - Lloyd breaks distance ties toward the lowest centroid index and sums
//     members in point order; row-parallel assignment writes disjoint slots,
//     so the worker count never changes the result.
//
// An empty cluster keeps its previous centroid and is reported in
// Clustering.EmptyClusters. Hitting the iteration cap is not an error: the
// caller inspects Clustering.Converged.
package kmeans
