// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Matrix is the read-only view consumed by the kernels. *Dense implements it;
// any other implementation goes through the At-based fallback paths.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*big.Rat, error)
}
