// Package matrix_test provides benchmarks for the matrix kernels used by the
// spectral pipeline, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkE *matrix.EigenResult
)

func benchSymmetric(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()
			rows[i][j], rows[j][i] = v, v
		}
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchSymmetric(b, n, 1337)
			B := benchSymmetric(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkJacobi(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchSymmetric(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := matrix.Jacobi(A)
				if err != nil && !matrix.IsNonConvergence(err) {
					b.Fatal(err)
				}
				sinkE = res
			}
		})
	}
}
