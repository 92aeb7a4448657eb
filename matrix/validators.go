// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/structure checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still use errors.Is.

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures x has exactly n non-nil entries.
// Complexity: O(n).
func ValidateVecLen(x []*big.Rat, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}
	for i, v := range x {
		if v == nil {
			return validatorErrorf("ValidateVecLen", fmt.Errorf("x[%d]: %w", i, ErrNilValue))
		}
	}

	return nil
}

// ValidateUpperTriangular ensures every entry strictly below the main
// diagonal is exactly zero. Assumes m is non-nil.
// Complexity: O(r*min(r,c)).
func ValidateUpperTriangular(m Matrix) error {
	var (
		i, j int
		v    *big.Rat
		err  error
	)
	for i = 1; i < m.Rows(); i++ {
		for j = 0; j < i && j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateUpperTriangular", err)
			}
			if v.Sign() != 0 {
				return validatorErrorf("ValidateUpperTriangular", fmt.Errorf("(%d,%d)=%s: %w", i, j, v.RatString(), ErrNotTriangular))
			}
		}
	}

	return nil
}
