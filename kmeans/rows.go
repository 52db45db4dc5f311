// SPDX-License-Identifier: MIT

package kmeans

import (
	"github.com/katalvlaran/spectral/matrix"
)

// rowsOf validates m (non-nil, finite) and returns a private row copy.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// sqDist is the squared Euclidean distance; callers guarantee equal lengths.
func sqDist(x, y []float64) float64 {
	d, _ := matrix.SquaredDistance(x, y)

	return d
}
