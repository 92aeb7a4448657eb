// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Compare exact rationals by their canonical "p/q" strings.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustInts BUILDS a *Dense from integer rows or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err, "NewFromInts")

	return m
}

// MustAt READS (i,j) as a canonical rational string or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) string {
	t.Helper()
	v, err := m.At(i, j)
	require.NoErrorf(t, err, "At(%d,%d)", i, j)

	return v.RatString()
}

// Rats CONVERTS canonical strings ("3", "-1/2") to *big.Rat values.
func Rats(t *testing.T, ss ...string) []*big.Rat {
	t.Helper()
	out := make([]*big.Rat, len(ss))
	for i, s := range ss {
		r, ok := new(big.Rat).SetString(s)
		require.Truef(t, ok, "bad rational %q", s)
		out[i] = r
	}

	return out
}

// Strs RENDERS a rational vector as canonical strings for require.Equal.
func Strs(x []*big.Rat) []string {
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = v.RatString()
	}

	return out
}

// CompareExact ASSERTS m equals want entry by entry (canonical strings).
func CompareExact(t *testing.T, want [][]string, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "entry (%d,%d)", i, j)
		}
	}
}
