// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels, either plain or wrapped with an
// operation tag via matrixErrorf; callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged input rows, a vector of the wrong length, or a triangular
	// system that is not r×(r+1).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilValue indicates a nil *big.Rat passed where a value is required.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrNotTriangular signals a nonzero entry below the main diagonal of a
	// matrix that must be upper triangular.
	ErrNotTriangular = errors.New("matrix: matrix is not upper triangular")

	// ErrSingular is returned when elimination cannot reach the
	// one-free-parameter triangular form: no nonzero pivot in a column, fewer
	// equations than needed, or a leftover row that does not reduce to zero.
	ErrSingular = errors.New("matrix: singular matrix")
)
