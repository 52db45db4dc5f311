// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectral/matrix"
)

// Seeding is the output of Seed: the chosen point indices, in draw order, and
// the matching k×d centroid matrix (row c is a copy of points[Indices[c]]).
type Seeding struct {
	Indices   []int
	Centroids *matrix.Dense
}

// Seed chooses k initial centroids with k-means++.
//
// Implementation:
//   - Stage 1: validate k ∈ [1, N] and finite points.
//   - Stage 2: rng := rand.New(rand.NewSource(seed)); first index uniform.
//   - Stage 3: keep D²(i), the squared distance from point i to its nearest
//     chosen centroid. Each further draw takes u = rng.Float64()·ΣD² and picks
//     the first i whose cumulative D² exceeds u.
//   - Stage 4: copy the chosen rows into Centroids.
//
// Behavior highlights:
//   - Chosen points have D² = 0 and are never drawn twice while ΣD² > 0.
//   - ΣD² = 0 (all remaining points coincide with chosen ones) falls back to
//     the smallest unchosen index; no random number is consumed.
//
// Errors:
//   - ErrInvalidK (k < 1), ErrDegenerateInput (k > N).
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(N·k·d), Space O(N + k·d).
func Seed(points matrix.Matrix, k int, seed int64) (*Seeding, error) {
	if err := matrix.ValidateNotNil(points); err != nil {
		return nil, kmeansErrorf(opSeed, err)
	}
	n := points.Rows()
	if k < 1 {
		return nil, kmeansErrorf(opSeed, fmt.Errorf("k=%d: %w", k, ErrInvalidK))
	}
	if k > n {
		return nil, kmeansErrorf(opSeed, fmt.Errorf("k=%d > n=%d: %w", k, n, ErrDegenerateInput))
	}
	rows, err := rowsOf(points)
	if err != nil {
		return nil, kmeansErrorf(opSeed, err)
	}

	rng := rand.New(rand.NewSource(seed))
	chosen := make([]bool, n)
	indices := make([]int, 0, k)
	d2 := make([]float64, n)

	pick := func(idx int) {
		chosen[idx] = true
		indices = append(indices, idx)
		var d float64
		for i, p := range rows {
			if chosen[i] {
				d2[i] = 0
				continue
			}
			d = sqDist(p, rows[idx])
			if len(indices) == 1 || d < d2[i] {
				d2[i] = d
			}
		}
	}

	pick(rng.Intn(n))
	for len(indices) < k {
		pick(nextIndex(rng, d2, chosen))
	}

	centroids, err := matrix.NewDense(k, points.Cols())
	if err != nil {
		return nil, kmeansErrorf(opSeed, err)
	}
	for c, idx := range indices {
		for j, v := range rows[idx] {
			if err = centroids.Set(c, j, v); err != nil {
				return nil, kmeansErrorf(opSeed, err)
			}
		}
	}

	return &Seeding{Indices: indices, Centroids: centroids}, nil
}

// nextIndex performs one D²-weighted draw.
func nextIndex(rng *rand.Rand, d2 []float64, chosen []bool) int {
	total := floats.Sum(d2)
	if total <= 0 {
		for i, c := range chosen {
			if !c {
				return i
			}
		}
	}

	u := rng.Float64() * total
	var cum float64
	last := -1
	for i, d := range d2 {
		if d <= 0 {
			continue
		}
		cum += d
		last = i
		if cum > u {
			return i
		}
	}

	// rounding left cum ≤ u: take the last candidate
	return last
}
