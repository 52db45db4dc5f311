// SPDX-License-Identifier: MIT

package spk

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// Result is the tagged output of Compute. Exactly one payload is set:
//   - Matrix for GoalAdjacency, GoalDegree, GoalLaplacian and GoalEmbedding;
//   - Eigen for GoalEigen;
//   - Clusters for GoalClusters.
type Result struct {
	Goal      Goal
	RequestID string
	Matrix    *matrix.Dense
	Eigen     *matrix.EigenResult
	Clusters  *Clusters
	// K is the cluster count used by GoalEmbedding and GoalClusters.
	K        int
	Warnings []Warning
}

// Clusters is the GoalClusters payload.
type Clusters struct {
	K           int
	Assignment  []int
	Centroids   *matrix.Dense
	SeedIndices []int
	Iterations  int
	Converged   bool
}

// WarnKind classifies a non-fatal condition.
type WarnKind int

const (
	// WarnNonConvergence: Jacobi hit its sweep cap; eigenpairs are best effort.
	WarnNonConvergence WarnKind = iota
	// WarnEmptyCluster: a centroid had no members and kept its position.
	WarnEmptyCluster
)

func (k WarnKind) String() string {
	switch k {
	case WarnNonConvergence:
		return "non_convergence"
	case WarnEmptyCluster:
		return "empty_cluster"
	default:
		return fmt.Sprintf("warn(%d)", int(k))
	}
}

// Warning is a non-fatal condition observed while producing a Result.
type Warning struct {
	Stage  Stage
	Kind   WarnKind
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at %s: %s", w.Kind, w.Stage, w.Detail)
}

// Rows flattens the payload into rows:
//   - matrix goals: the matrix rows;
//   - GoalEigen: eigenvalues, then the rows of the eigenvector matrix;
//   - GoalClusters: the seed indices, then the final centroids.
func (r *Result) Rows() [][]float64 {
	switch {
	case r == nil:
		return nil
	case r.Matrix != nil:
		return r.Matrix.ToRows()
	case r.Eigen != nil:
		return r.Eigen.Rows()
	case r.Clusters != nil:
		head := make([]float64, len(r.Clusters.SeedIndices))
		for i, idx := range r.Clusters.SeedIndices {
			head[i] = float64(idx)
		}

		return append([][]float64{head}, r.Clusters.Centroids.ToRows()...)
	default:
		return nil
	}
}
