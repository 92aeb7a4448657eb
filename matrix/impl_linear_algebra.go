// SPDX-License-Identifier: MIT
// Package matrix provides the elimination kernels for homogeneous systems
// M·x = 0 with exactly one degree of freedom.
//
// Purpose:
//   - Echelon: forward elimination to an (n-1)×n upper-triangular system.
//   - BackSubstitute: solve that system with the last unknown fixed to 1.
//   - MatVec: exact product used to check a candidate solution.
//
// Notes:
//   - All kernels validate through validators.go and wrap sentinels with an
//     operation tag via matrixErrorf.
//   - Inputs are never mutated.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opEchelon        = "Echelon"
	opBackSubstitute = "BackSubstitute"
	opMatVec         = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Echelon reduces a copy of m to upper-triangular form for a system with one
// free parameter in its last column.
//
// Implementation:
//   - Stage 1: validate m; copy it into a fresh Dense.
//   - Stage 2: for each pivot column c = 0..cols-2: when (c,c) is zero, swap
//     in the first row below with a nonzero entry in column c (first found,
//     not largest); then for every row j > c add (-m[j][c]/m[c][c])·row c.
//   - Stage 3: rows cols-1..rows-1 must now be all zero; drop them.
//
// Returns:
//   - *Dense of shape (cols-1)×cols, upper triangular with a nonzero diagonal.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrSingular when fewer than cols-1 rows exist, when a pivot column has
//     no nonzero entry at or below the diagonal, or when a leftover row does
//     not reduce to zero (only the trivial solution exists).
//
// Determinism:
//   - Fixed pivot search order; exact arithmetic.
//
// Complexity:
//   - Time O(rows·cols²) rational operations, Space O(rows·cols).
func Echelon(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}

	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	u := src.Clone()
	rows, cols := u.Shape()
	if cols == 0 {
		return nil, matrixErrorf(opEchelon, ErrInvalidDimensions)
	}

	n := cols - 1 // number of pivot columns; column n is the free one
	if rows < n {
		return nil, matrixErrorf(opEchelon, fmt.Errorf("%d equations for %d pivots: %w", rows, n, ErrSingular))
	}

	var (
		c, p, j int
		pivot   *big.Rat
		f       = new(big.Rat)
		tmp     = new(big.Rat)
	)
	for c = 0; c < n; c++ {
		// Partial pivoting by first nonzero entry.
		if u.data[c*cols+c].Sign() == 0 {
			p = c + 1
			for p < rows && u.data[p*cols+c].Sign() == 0 {
				p++
			}
			if p == rows {
				return nil, matrixErrorf(opEchelon, fmt.Errorf("no pivot in column %d: %w", c, ErrSingular))
			}
			u.swapRows(c, p)
		}

		pivot = u.data[c*cols+c]
		for j = c + 1; j < rows; j++ {
			if u.data[j*cols+c].Sign() == 0 {
				continue
			}
			f.Quo(u.data[j*cols+c], pivot)
			f.Neg(f)
			u.addScaledRow(j, c, c, f, tmp)
		}
	}

	// Leftover rows must be fully reduced.
	for j = n; j < rows; j++ {
		if !u.zeroRow(j) {
			return nil, matrixErrorf(opEchelon, fmt.Errorf("row %d does not reduce to zero: %w", j, ErrSingular))
		}
	}
	u.truncateRows(n)

	return u, nil
}

// BackSubstitute solves an upper-triangular r×(r+1) system U·x = 0 with the
// free unknown x[r] fixed to exactly 1:
//
//	x[i] = -(Σ_{j>i} U[i][j]·x[j]) / U[i][i],  i = r-1 … 0
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrDimensionMismatch unless cols == rows+1.
//   - ErrNotTriangular when an entry below the diagonal is nonzero.
//   - ErrSingular on a zero diagonal entry.
//
// Complexity:
//   - Time O(r²), Space O(r).
func BackSubstitute(u Matrix) ([]*big.Rat, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}
	rows, cols := u.Rows(), u.Cols()
	if cols != rows+1 {
		return nil, matrixErrorf(opBackSubstitute, fmt.Errorf("shape %dx%d, want r×(r+1): %w", rows, cols, ErrDimensionMismatch))
	}
	if err := ValidateUpperTriangular(u); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}

	d, err := toDense(u)
	if err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}

	x := make([]*big.Rat, cols)
	x[cols-1] = big.NewRat(1, 1)

	var (
		i, j int
		base int
		sum  = new(big.Rat)
		tmp  = new(big.Rat)
	)
	for i = rows - 1; i >= 0; i-- {
		base = i * cols
		if d.data[base+i].Sign() == 0 {
			return nil, matrixErrorf(opBackSubstitute, fmt.Errorf("zero diagonal at %d: %w", i, ErrSingular))
		}
		sum.SetInt64(0)
		for j = i + 1; j < cols; j++ {
			tmp.Mul(d.data[base+j], x[j])
			sum.Add(sum, tmp)
		}
		x[i] = new(big.Rat).Quo(sum, d.data[base+i])
		x[i].Neg(x[i])
	}

	return x, nil
}

// MatVec computes y = m·x exactly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols), ErrNilValue.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]*big.Rat, d.r)
	var (
		i, j, base int
		tmp        = new(big.Rat)
	)
	for i = 0; i < d.r; i++ {
		y[i] = new(big.Rat)
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if x[j].Sign() == 0 {
				continue
			}
			tmp.Mul(d.data[base+j], x[j])
			y[i].Add(y[i], tmp)
		}
	}

	return y, nil
}

// NullVector chains Echelon and BackSubstitute: the unique (up to scale)
// solution of m·x = 0 with x[last] = 1.
func NullVector(m Matrix) ([]*big.Rat, error) {
	u, err := Echelon(m)
	if err != nil {
		return nil, err
	}

	return BackSubstitute(u)
}
