// SPDX-License-Identifier: MIT
// Package align: sentinel error set.
// Every exported operation returns these sentinels, wrapped with the operation
// name and coordinates where useful; callers match them with errors.Is.

package align

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("align: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("align: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed to a backtracker.
	ErrNilMatrix = errors.New("align: nil matrix")

	// ErrShapeMismatch indicates that the matrix is not (n+1)×(m+1) for symbol counts n and m.
	ErrShapeMismatch = errors.New("align: matrix shape does not match sequences")

	// ErrInconsistentMatrix indicates that no predecessor of a cell reproduces
	// its score under the given Scoring, i.e. the matrix was not produced by
	// the matching engine with the same inputs.
	ErrInconsistentMatrix = errors.New("align: no predecessor reproduces cell score")
)

// cellErrorf wraps err with the operation name and cell coordinates.
func cellErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
}
