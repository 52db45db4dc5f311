// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectral/matrix"
)

// Clustering is the output of Lloyd.
//   - Assignment[i] ∈ [0, k) is the cluster of point i.
//   - Iterations counts assignment passes, including the final one that
//     detected no change.
//   - EmptyClusters lists, ascending, the clusters without members in the
//     final assignment; their centroids kept their previous position.
type Clustering struct {
	Centroids     *matrix.Dense
	Assignment    []int
	Iterations    int
	Converged     bool
	EmptyClusters []int
}

// Lloyd refines initial centroids by alternating assignment and update.
//
// Implementation:
//   - Stage 1: validate shapes (centroids as wide as points, k ≥ 1).
//   - Stage 2: for it = 1 … maxIter:
//     A. assign every point to its nearest centroid (squared Euclidean,
//     ties to the lowest index);
//     B. stop with Converged when no assignment changed;
//     C. move each centroid to the mean of its members; an empty cluster
//     keeps its position.
//
// Behavior highlights:
//   - At convergence the returned centroids are the means of the returned
//     assignment, so one more Assign pass reproduces it exactly.
//   - Reaching maxIter is reported through Converged=false, not an error.
//   - Neither input is mutated.
//
// Errors:
//   - ErrInvalidK, ErrDimensionMismatch, matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(maxIter·N·k·d), Space O(N + k·d).
func Lloyd(points, initial matrix.Matrix, opts ...Option) (*Clustering, error) {
	o := gatherOptions(opts...)
	pts, cents, err := prepare(opLloyd, points, initial)
	if err != nil {
		return nil, err
	}

	var (
		n          = len(pts)
		k          = len(cents)
		assignment = make([]int, n)
		next       = make([]int, n)
		counts     = make([]int, k)
		sums       = make([][]float64, k)
		converged  bool
		it         int
		i, c       int
	)
	for c = range sums {
		sums[c] = make([]float64, len(cents[c]))
	}
	for i = range assignment {
		assignment[i] = -1
	}

	for it = 1; it <= o.maxIter; it++ {
		// A
		assignRows(pts, cents, next, o)
		// B
		changed := false
		for i = range next {
			if next[i] != assignment[i] {
				changed = true
				break
			}
		}
		assignment, next = next, assignment
		if !changed {
			converged = true
			break
		}
		// C
		for c = 0; c < k; c++ {
			counts[c] = 0
			for i = range sums[c] {
				sums[c][i] = 0
			}
		}
		for i, c = range assignment {
			counts[c]++
			floats.Add(sums[c], pts[i])
		}
		for c = 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			floats.ScaleTo(cents[c], 1/float64(counts[c]), sums[c])
		}
	}
	if it > o.maxIter {
		it = o.maxIter
	}

	out, err := matrix.NewFromRows(cents)
	if err != nil {
		return nil, kmeansErrorf(opLloyd, err)
	}
	res := &Clustering{
		Centroids:  out,
		Assignment: assignment,
		Iterations: it,
		Converged:  converged,
	}
	for c = range counts {
		counts[c] = 0
	}
	for _, c = range assignment {
		counts[c]++
	}
	for c = range counts {
		if counts[c] == 0 {
			res.EmptyClusters = append(res.EmptyClusters, c)
		}
	}

	return res, nil
}

// Assign runs one assignment pass: the index of the nearest centroid for
// every point, ties to the lowest index.
func Assign(points, centroids matrix.Matrix, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)
	pts, cents, err := prepare(opAssign, points, centroids)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(pts))
	assignRows(pts, cents, out, o)

	return out, nil
}

// prepare validates a points/centroids pair and returns private row copies.
func prepare(op string, points, centroids matrix.Matrix) ([][]float64, [][]float64, error) {
	if err := matrix.ValidateNotNil(points); err != nil {
		return nil, nil, kmeansErrorf(op, err)
	}
	if err := matrix.ValidateNotNil(centroids); err != nil {
		return nil, nil, kmeansErrorf(op, err)
	}
	if centroids.Rows() < 1 {
		return nil, nil, kmeansErrorf(op, fmt.Errorf("k=%d: %w", centroids.Rows(), ErrInvalidK))
	}
	if points.Cols() != centroids.Cols() {
		return nil, nil, kmeansErrorf(op, fmt.Errorf("points have %d columns, centroids %d: %w",
			points.Cols(), centroids.Cols(), ErrDimensionMismatch))
	}
	pts, err := rowsOf(points)
	if err != nil {
		return nil, nil, kmeansErrorf(op, err)
	}
	cents, err := rowsOf(centroids)
	if err != nil {
		return nil, nil, kmeansErrorf(op, err)
	}

	return pts, cents, nil
}

// assignRows fills out[i] with the nearest centroid of pts[i]. From the
// parallel threshold on, contiguous row blocks are handled by an errgroup;
// each worker writes only its own block.
func assignRows(pts, cents [][]float64, out []int, o Options) {
	n := len(pts)
	block := func(lo, hi int) {
		var (
			best  int
			bestD float64
			d     float64
		)
		for i := lo; i < hi; i++ {
			best, bestD = 0, sqDist(pts[i], cents[0])
			for c := 1; c < len(cents); c++ {
				if d = sqDist(pts[i], cents[c]); d < bestD {
					best, bestD = c, d
				}
			}
			out[i] = best
		}
	}

	if n < o.parallelThreshold || o.workers <= 1 {
		block(0, n)

		return
	}

	var g errgroup.Group
	size := (n + o.workers - 1) / o.workers
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, min(lo+size, n)
		g.Go(func() error {
			block(lo, hi)

			return nil
		})
	}
	_ = g.Wait() // blocks never fail
}
