// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
)

// Eigengap chooses the cluster count k from eigenvalues sorted ascending.
//
// Implementation:
//   - k > 0 (explicit): returned unchanged when k ≤ N, else ErrInvalidK.
//   - k ≤ 0 (auto): gaps δᵢ = λᵢ₊₁ − λᵢ for i = 0 … ⌈N/2⌉−1 (bounded by N−2),
//     k = 1 + argmax δᵢ; the smallest i wins ties.
//
// Behavior highlights:
//   - Example: [0, 0.1, 0.15, 0.9, 0.95] ⇒ δ = [0.1, 0.05, 0.75] ⇒ k = 3.
//   - A single eigenvalue yields k = 1 in auto mode.
//
// Errors:
//   - ErrInvalidInput: no eigenvalues, or values not sorted ascending.
//   - ErrInvalidK: explicit k > N.
//
// Complexity:
//   - Time O(N), Space O(1).
func Eigengap(values []float64, k int) (int, error) {
	n := len(values)
	if n == 0 {
		return 0, stageErrorf(opEigengap, fmt.Errorf("no eigenvalues: %w", ErrInvalidInput))
	}
	if k > 0 {
		if k > n {
			return 0, stageErrorf(opEigengap, fmt.Errorf("k=%d, n=%d: %w", k, n, ErrInvalidK))
		}

		return k, nil
	}
	for i := 1; i < n; i++ {
		if values[i] < values[i-1] {
			return 0, rowErrorf(opEigengap, i, fmt.Errorf("eigenvalues not ascending: %w", ErrInvalidInput))
		}
	}

	window := (n + 1) / 2 // ⌈N/2⌉
	if window > n-1 {
		window = n - 1
	}
	best, bestGap := 0, -1.0
	for i := 0; i < window; i++ {
		if gap := values[i+1] - values[i]; gap > bestGap {
			best, bestGap = i, gap
		}
	}

	return best + 1, nil
}
