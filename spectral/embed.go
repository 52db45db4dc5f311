// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// Embed forms the N×k spectral embedding U from eigenvectors whose columns are
// already sorted by ascending eigenvalue: U is the first k columns. Rows are
// not re-normalized.
//
// Errors:
//   - ErrInvalidK when k ∉ [1, Cols].
//   - matrix.ErrNilMatrix.
func Embed(vectors matrix.Matrix, k int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(vectors); err != nil {
		return nil, stageErrorf(opEmbed, err)
	}
	if k < 1 || k > vectors.Cols() {
		return nil, stageErrorf(opEmbed, fmt.Errorf("k=%d, columns=%d: %w", k, vectors.Cols(), ErrInvalidK))
	}
	n := vectors.Rows()
	u, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, stageErrorf(opEmbed, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if v, err = vectors.At(i, j); err != nil {
				return nil, stageErrorf(opEmbed, err)
			}
			if err = u.Set(i, j, v); err != nil {
				return nil, rowErrorf(opEmbed, i, err)
			}
		}
	}

	return u, nil
}
