package linalg

import (
	"errors"
	"fmt"
)

// Sentinel errors for linalg operations. Callers branch with errors.Is.
var (
	// ErrInvalidDimensions indicates a requested matrix shape is non-positive
	// or two operands' shapes are incompatible for the requested operation.
	ErrInvalidDimensions = errors.New("linalg: invalid dimensions")

	// ErrOutOfRange indicates a row or column index fell outside a matrix's
	// bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNotSquare indicates an operation that requires a square matrix
	// (LU, Inverse) was given a non-square one.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrSingular indicates LU decomposition produced an exactly zero
	// pivot; the matrix has no inverse. Near-zero pivots are not
	// rejected. In the grid domain this
	// means the network (or a contingency set's reduced graph) has split
	// into electrical islands.
	ErrSingular = errors.New("linalg: matrix is singular")
)

func linalgErrorf(method string, err error) error {
	return fmt.Errorf("linalg.%s: %w", method, err)
}
