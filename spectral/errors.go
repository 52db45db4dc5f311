// SPDX-License-Identifier: MIT
// Package spectral: sentinel error set.
// All stages return these sentinels wrapped with the stage name and, where it
// exists, the offending row index. Callers match with errors.Is.

package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed points: fewer than two rows, empty
	// rows, rows of mismatched dimension, or non-finite coordinates.
	ErrInvalidInput = errors.New("spectral: invalid input")

	// ErrSingularDegree indicates an isolated point: D[i][i] ≤ epsilon, so the
	// inverse square root in the normalized Laplacian is undefined.
	ErrSingularDegree = errors.New("spectral: singular degree")

	// ErrInvalidK indicates an explicitly requested k outside [1, N].
	ErrInvalidK = errors.New("spectral: k out of range")
)

// Stage tags used in error wrapping.
const (
	opAdjacency = "Adjacency"
	opDegree    = "Degree"
	opLaplacian = "NormalizedLaplacian"
	opEigengap  = "Eigengap"
	opEmbed     = "Embed"
)

// stageErrorf wraps err with a stage tag.
func stageErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rowErrorf wraps err with a stage tag and the offending row index.
func rowErrorf(op string, row int, err error) error {
	return fmt.Errorf("%s: row %d: %w", op, row, err)
}
