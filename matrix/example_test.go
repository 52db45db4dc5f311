package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// ExampleJacobi diagonalizes [[2,1],[1,2]] and prints the sorted spectrum.
func ExampleJacobi() {
	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 2}})

	res, err := matrix.Jacobi(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sorted, _ := matrix.SortEigen(res)
	fmt.Printf("values=%.4f rotations=%d converged=%v\n", sorted.Values, sorted.Rotations, sorted.Converged)
	// Output:
	// values=[1.0000 3.0000] rotations=1 converged=true
}

// ExampleMul shows the allocation-fresh product kernel.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	id, _ := matrix.NewIdentity(2)

	c, _ := matrix.Mul(a, id)
	fmt.Print(c)
	// Output:
	// [1, 2]
	// [3, 4]
}
