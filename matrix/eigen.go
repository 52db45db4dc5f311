// SPDX-License-Identifier: MIT

// Package matrix: Jacobi eigenvalue decomposition for real symmetric matrices.
//
// Purpose:
//   - Diagonalize a symmetric A through successive plane rotations, accumulating
//     them into an orthogonal V so that Vᵀ·A·V ≈ diag(λ).
//   - Report convergence explicitly: hitting the sweep cap is NOT fatal, the
//     best-available pairs are returned together with ErrNonConvergence.
//   - Order pairs deterministically (SortEigen) for reproducible embeddings.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// signEps is the magnitude below which an eigenvector component is treated as
// zero when picking the sign convention in SortEigen.
const signEps = 1e-12

// EigenResult is the output of Jacobi.
//   - Values[j] pairs with column j of Vectors.
//   - Rotations counts the applied plane rotations.
//   - OffNorm is Σ_{i≠j} A[i,j]² of the final working matrix.
type EigenResult struct {
	Values    []float64
	Vectors   *Dense
	Rotations int
	Converged bool
	OffNorm   float64
}

// Jacobi computes all eigenvalues and eigenvectors of a real symmetric matrix.
//
// Implementation:
//   - Stage 1: ValidateSymmetric (nil, square, symmetry) and ValidateFinite.
//   - Stage 2: A := copy of m; V := I.
//   - Stage 3: while off(A) > tol·n and rotations < maxSweeps·n(n−1)/2:
//     J.1 pick pivot (p,q), p<q, maximizing |A[p,q]|, scanning row-major with
//     strict '>' so ties keep the lexicographically smallest pair;
//     J.2 θ = (A[q,q]−A[p,p]) / (2·A[p,q]); t = sign(θ)/(|θ|+hypot(θ,1)) with
//     sign(0)=+1, c = 1/√(t²+1), s = t·c;
//     J.3 rotate rows/cols p,q of A, update the diagonal via A[p,p]−t·A[p,q]
//     and A[q,q]+t·A[p,q], zero A[p,q];
//     J.4 accumulate V ← V·P;
//     J.5 recompute off(A).
//   - Stage 4: eigenvalues = diag(A), eigenvectors = columns of V.
//
// Behavior highlights:
//   - t is computed from the small root of t²+2θt−1=0, so |t| ≤ 1 and the
//     rotation never suffers cancellation when A[p,p] ≈ A[q,q].
//   - hypot keeps θ² from overflowing when A[p,q] is tiny.
//   - m is never mutated.
//
// Returns:
//   - *EigenResult, unsorted (diagonal order). Use SortEigen to order.
//   - error: nil on convergence; ErrNonConvergence (wrapped) with a non-nil
//     result when the cap was hit; any other error comes with a nil result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf, ErrNonConvergence.
//
// Determinism:
//   - Fixed pivot scan order and tie-break; no randomness.
//
// Complexity:
//   - Time O(n²) per rotation (pivot scan + off recompute), Space O(n²).
func Jacobi(m Matrix, opts ...Option) (*EigenResult, error) {
	o := gatherOptions(opts...)

	if err := ValidateSymmetric(m, o.symTol); err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}
	a := src.clone()
	n := a.r
	v, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}

	var (
		threshold    = o.tol * float64(n)
		maxRotations = o.maxSweeps * n * (n - 1) / 2
		off          = a.offDiagonalSumSquares()
		rotations    int
		i, p, q      int
		x            float64
		app, aqq     float64
		apq          float64
		aip, aiq     float64
		theta, t     float64
		c, s         float64
	)
	for off > threshold && rotations < maxRotations {
		// J.1
		p, q = a.pivot()
		if a.data[p*n+q] == 0 {
			break
		}

		// J.2: rotation parameters.
		app = a.data[p*n+p]
		aqq = a.data[q*n+q]
		apq = a.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = 1.0 / (math.Abs(theta) + math.Hypot(theta, 1))
		if theta < 0 {
			t = -t
		}
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.3: rotate A in rows/cols p and q, keeping it symmetric.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q] = s*aip + c*aiq
			a.data[q*n+i] = a.data[i*n+q]
		}
		a.data[p*n+p] = app - t*apq
		a.data[q*n+q] = aqq + t*apq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		// J.4: accumulate V ← V·P.
		for i = 0; i < n; i++ {
			aip = v.data[i*n+p]
			aiq = v.data[i*n+q]
			v.data[i*n+p] = c*aip - s*aiq
			v.data[i*n+q] = s*aip + c*aiq
		}

		rotations++
		// J.5
		off = a.offDiagonalSumSquares()
	}

	res := &EigenResult{
		Values:    make([]float64, n),
		Vectors:   v,
		Rotations: rotations,
		Converged: off <= threshold,
		OffNorm:   off,
	}
	for i = 0; i < n; i++ {
		x = a.data[i*n+i]
		if x == 0 {
			x = 0 // fold -0
		}
		res.Values[i] = x
	}
	if !res.Converged {
		return res, matrixErrorf(opJacobi, fmt.Errorf("off=%.3g after %d rotations: %w",
			off, rotations, ErrNonConvergence))
	}

	return res, nil
}

// MaxOffDiagonal returns the Jacobi pivot of a square matrix: the pair (p,q),
// p<q, maximizing |m[p,q]|, and the signed value m[p,q].
//
// Behavior highlights:
//   - Row-major scan with strict '>' so ties keep the lexicographically smallest pair.
//   - An already-diagonal matrix yields (0,1) and 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (n < 2).
//
// Complexity:
//   - Time O(n²), Space O(1) for *Dense input.
func MaxOffDiagonal(m Matrix) (p, q int, v float64, err error) {
	if err = ValidateSquare(m); err != nil {
		return 0, 0, 0, matrixErrorf(opPivot, err)
	}
	if m.Rows() < 2 {
		return 0, 0, 0, matrixErrorf(opPivot, ErrInvalidDimensions)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, 0, 0, matrixErrorf(opPivot, err)
	}
	p, q = d.pivot()

	return p, q, d.data[p*d.c+q], nil
}

// pivot is the unchecked kernel behind MaxOffDiagonal; requires n ≥ 2.
func (m *Dense) pivot() (p, q int) {
	var (
		n      = m.r
		i, j   int
		x      float64
		maxAbs = -1.0
	)
	p, q = 0, 1
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			x = math.Abs(m.data[i*n+j])
			if x > maxAbs {
				maxAbs, p, q = x, i, j
			}
		}
	}

	return p, q
}

// IsNonConvergence reports whether err only signals a Jacobi sweep-cap hit,
// in which case the accompanying EigenResult is usable.
func IsNonConvergence(err error) bool {
	return errors.Is(err, ErrNonConvergence)
}

// SortEigen returns a copy of res with pairs ordered by ascending eigenvalue.
//
// Implementation:
//   - Stage 1: stable sort of the index permutation by Values, so equal
//     eigenvalues keep their original diagonal order (index tie-break).
//   - Stage 2: permute Values and the columns of Vectors.
//   - Stage 3: sign convention: each eigenvector's first component with
//     |x| > signEps is made positive.
//
// Behavior highlights:
//   - res is not mutated; Rotations/Converged/OffNorm are carried over.
//
// Errors:
//   - ErrNilMatrix when res or res.Vectors is nil.
//   - ErrDimensionMismatch when len(Values) disagrees with Vectors.
//
// Complexity:
//   - Time O(n log n + n²), Space O(n²).
func SortEigen(res *EigenResult) (*EigenResult, error) {
	if res == nil || res.Vectors == nil {
		return nil, matrixErrorf(opSortEigen, ErrNilMatrix)
	}
	n := len(res.Values)
	if res.Vectors.r != n || res.Vectors.c != n {
		return nil, matrixErrorf(opSortEigen, fmt.Errorf("%d values vs %dx%d vectors: %w",
			n, res.Vectors.r, res.Vectors.c, ErrDimensionMismatch))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return res.Values[order[a]] < res.Values[order[b]]
	})

	out := &EigenResult{
		Values:    make([]float64, n),
		Vectors:   &Dense{r: n, c: n, data: make([]float64, n*n)},
		Rotations: res.Rotations,
		Converged: res.Converged,
		OffNorm:   res.OffNorm,
	}
	var (
		i, col, src int
		flip        float64
	)
	for col, src = range order {
		out.Values[col] = res.Values[src]
		flip = 1
		for i = 0; i < n; i++ {
			x := res.Vectors.data[i*n+src]
			if math.Abs(x) > signEps {
				if x < 0 {
					flip = -1
				}
				break
			}
		}
		for i = 0; i < n; i++ {
			out.Vectors.data[i*n+col] = flip * res.Vectors.data[i*n+src]
		}
	}

	return out, nil
}

// Rows exports the result in the row layout used by external collaborators:
// the first row holds the eigenvalues, followed by the n rows of Vectors.
func (r *EigenResult) Rows() [][]float64 {
	out := make([][]float64, 0, len(r.Values)+1)
	out = append(out, append([]float64(nil), r.Values...))

	return append(out, r.Vectors.ToRows()...)
}
