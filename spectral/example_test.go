// SPDX-License-Identifier: MIT
package spectral_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
)

// ExampleEigengap picks k from the largest gap in the lower half of the spectrum.
func ExampleEigengap() {
	k, _ := spectral.Eigengap([]float64{0, 0.1, 0.15, 0.9, 0.95}, 0)
	fmt.Println(k)
	// Output: 3
}

// ExampleLaplacian runs the graph stages and the eigen-decomposition on two
// well separated pairs of points.
func ExampleLaplacian() {
	pts := [][]float64{{0, 0}, {0, 1}, {40, 40}, {40, 41}}
	l, err := spectral.Laplacian(pts)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := matrix.Jacobi(l)
	sorted, _ := matrix.SortEigen(res)
	k, _ := spectral.Eigengap(sorted.Values, 0)
	fmt.Printf("k=%d\n", k)
	// Output: k=2
}
