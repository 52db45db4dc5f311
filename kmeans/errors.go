// SPDX-License-Identifier: MIT

package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateInput indicates more clusters than points during seeding.
	ErrDegenerateInput = errors.New("kmeans: degenerate input")

	// ErrInvalidK indicates k < 1.
	ErrInvalidK = errors.New("kmeans: invalid k")

	// ErrDimensionMismatch indicates points and centroids of different width.
	ErrDimensionMismatch = errors.New("kmeans: dimension mismatch")
)

const (
	opSeed   = "Seed"
	opLloyd  = "Lloyd"
	opAssign = "Assign"
)

func kmeansErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
