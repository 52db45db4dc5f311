// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/katalvlaran/spectral/matrix"
)

// Degree reduces an adjacency matrix to its diagonal degree matrix:
// D[i][i] = Σ_j W[i][j], all other entries zero.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped).
//
// Complexity:
//   - Time O(N²), Space O(N²).
func Degree(w matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, stageErrorf(opDegree, err)
	}
	sums, err := matrix.RowSums(w)
	if err != nil {
		return nil, stageErrorf(opDegree, err)
	}
	d, err := matrix.NewDense(len(sums), len(sums))
	if err != nil {
		return nil, stageErrorf(opDegree, err)
	}
	for i, s := range sums {
		if err = d.Set(i, i, s); err != nil {
			return nil, stageErrorf(opDegree, err)
		}
	}

	return d, nil
}
