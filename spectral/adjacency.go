// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectral/matrix"
)

// Adjacency builds the weighted adjacency (similarity) matrix of points.
//
// Implementation:
//   - Stage 1: ValidatePoints (N ≥ 2, d ≥ 1, equal row lengths, finite values).
//   - Stage 2: for every row i fill W[i][j] = exp(−‖xᵢ−xⱼ‖₂/2), j ≠ i; W[i][i] = 0.
//     Rows are independent; from the parallel threshold on they are filled by
//     an errgroup bounded to the configured worker count.
//   - Stage 3: copy into a *matrix.Dense.
//
// Behavior highlights:
//   - Each row computes both triangles itself; ‖xᵢ−xⱼ‖ and ‖xⱼ−xᵢ‖ are
//     bit-identical, so W is exactly symmetric and the parallel result equals
//     the sequential one.
//   - points is never mutated.
//
// Errors:
//   - ErrInvalidInput (wrapped with the offending row).
//
// Complexity:
//   - Time O(N²·d), Space O(N²).
func Adjacency(points [][]float64, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}

	n := len(points)
	rows := make([][]float64, n)
	fill := func(i int) {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			row[j] = math.Exp(-floats.Distance(points[i], points[j], 2) / 2)
		}
		rows[i] = row
	}

	if n >= o.parallelThreshold && o.workers > 1 {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				fill(i)

				return nil
			})
		}
		_ = g.Wait() // workers never fail
	} else {
		for i := 0; i < n; i++ {
			fill(i)
		}
	}

	w, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, stageErrorf(opAdjacency, err)
	}

	return w, nil
}

// ValidatePoints enforces the point-set contract shared by every entry point
// that accepts raw coordinates: N ≥ 2 rows of equal length d ≥ 1, all finite.
// Errors wrap ErrInvalidInput with the offending row.
func ValidatePoints(points [][]float64) error {
	if len(points) < 2 {
		return stageErrorf(opAdjacency, fmt.Errorf("need at least 2 points, got %d: %w", len(points), ErrInvalidInput))
	}
	d := len(points[0])
	if d < 1 {
		return rowErrorf(opAdjacency, 0, fmt.Errorf("empty point: %w", ErrInvalidInput))
	}
	for i, p := range points {
		if len(p) != d {
			return rowErrorf(opAdjacency, i, fmt.Errorf("dimension %d, want %d: %w", len(p), d, ErrInvalidInput))
		}
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return rowErrorf(opAdjacency, i, fmt.Errorf("non-finite coordinate: %w", ErrInvalidInput))
			}
		}
	}

	return nil
}
