// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact rationals with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never leak internal *big.Rat pointers: At returns copies, Set stores copies.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) allocations; At/Set: O(1) plus one big.Rat copy; Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxIsZeroRow = "IsZeroRow" // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     every entry is a non-nil *big.Rat owned by this matrix.
type Dense struct {
	r, c int        // row and column counts (zero rows allowed only via internal ctor)
	data []*big.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols), nil
}

// newDenseZeroOK allocates an r×c zero matrix, allowing r==0 or c==0.
// Callers guarantee non-negative dimensions.
func newDenseZeroOK(rows, cols int) *Dense {
	buf := make([]*big.Rat, rows*cols)
	for k := range buf {
		buf[k] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: buf}
}

// NewFromInts builds a Dense from integer rows. Every row must have the same
// non-zero length.
//
// Errors:
//   - ErrInvalidDimensions for no rows or an empty first row.
//   - ErrDimensionMismatch for ragged rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	r, c := len(rows), len(rows[0])
	m := newDenseZeroOK(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromInts: row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*c+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// Mutating the returned value never affects the matrix.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNilValue when v is nil.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[off].Set(v)

	return nil
}

// SetInt64 stores the integer v at (row, col).
func (m *Dense) SetInt64(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off].SetInt64(v)

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]*big.Rat, m.c)
	base := i * m.c
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Rat).Set(m.data[base+j])
	}

	return out, nil
}

// IsZeroRow reports whether every entry of row i is exactly zero.
func (m *Dense) IsZeroRow(i int) (bool, error) {
	if i < 0 || i >= m.r {
		return false, denseErrorf(ctxIsZeroRow, i, 0, ErrOutOfRange)
	}

	return m.zeroRow(i), nil
}

// zeroRow is the unchecked form of IsZeroRow.
func (m *Dense) zeroRow(i int) bool {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if m.data[base+j].Sign() != 0 {
			return false
		}
	}

	return true
}

// swapRows exchanges rows a and b by swapping pointers. Unchecked.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ba, bb := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[ba+j], m.data[bb+j] = m.data[bb+j], m.data[ba+j]
	}
}

// addScaledRow performs row dst += f * row src over columns [from, c).
// Unchecked; tmp is scratch space reused across calls.
func (m *Dense) addScaledRow(dst, src, from int, f, tmp *big.Rat) {
	bd, bs := dst*m.c, src*m.c
	for j := from; j < m.c; j++ {
		if m.data[bs+j].Sign() == 0 {
			continue
		}
		tmp.Mul(f, m.data[bs+j])
		m.data[bd+j].Add(m.data[bd+j], tmp)
	}
}

// truncateRows keeps only the first n rows. Unchecked; n <= r.
func (m *Dense) truncateRows(n int) {
	m.data = m.data[:n*m.c]
	m.r = n
}

// Clone returns a deep copy: new buffer, new *big.Rat values.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]*big.Rat, len(m.data))
	for k, v := range m.data {
		cp[k] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Integers print bare, fractions as "p/q".
func (m *Dense) String() string {
	var b strings.Builder
	m.Do(func(_, j int, v *big.Rat) bool {
		if j == 0 {
			b.WriteString(_fmtRowOpen)
		} else {
			b.WriteString(_fmtSep)
		}
		b.WriteString(v.RatString())
		if j+1 == m.c {
			b.WriteString(_fmtRowClose)
		}

		return true
	})

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v) with a
// read-only view of the value; stops early when f returns false.
// f must not retain or mutate v.
func (m *Dense) Do(f func(i, j int, v *big.Rat) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// toDense returns m itself when it is a *Dense, otherwise an equivalent
// Dense materialized through At. The result must be treated as read-only
// by callers that did not ask for a copy.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	r, c := m.Rows(), m.Cols()
	if r < 0 || c < 0 {
		return nil, ErrInvalidDimensions
	}
	d := newDenseZeroOK(r, c)
	var (
		i, j int
		v    *big.Rat
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if v == nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, ErrNilValue)
			}
			d.data[i*c+j].Set(v)
		}
	}

	return d, nil
}
