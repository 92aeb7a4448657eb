// Package matrix_test contains unit tests for the elimination kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/matrix"
)

// ---------- Echelon ----------

// TestEchelon_PivotSwap reduces the KNO3 = KNO2 + O2 system, which needs a
// row swap in column 1 and drops one degenerate row.
func TestEchelon_PivotSwap(t *testing.T) {
	t.Parallel()

	m := MustInts(t, [][]int64{
		{1, -1, 0},  // K
		{1, -1, 0},  // N
		{3, -2, -2}, // O
	})
	before := m.String()

	u, err := matrix.Echelon(m)
	require.NoError(t, err)
	CompareExact(t, [][]string{
		{"1", "-1", "0"},
		{"0", "1", "-2"},
	}, u)

	require.Equal(t, before, m.String(), "input must not be mutated")
}

// TestEchelon_AlreadyTriangular leaves a square-minus-one triangular input intact.
func TestEchelon_AlreadyTriangular(t *testing.T) {
	m := MustInts(t, [][]int64{{2, 0, -2}, {0, 2, -1}})
	u, err := matrix.Echelon(m)
	require.NoError(t, err)
	CompareExact(t, [][]string{{"2", "0", "-2"}, {"0", "2", "-1"}}, u)
}

// TestEchelon_Fractions checks exact rational elimination.
func TestEchelon_Fractions(t *testing.T) {
	m := MustInts(t, [][]int64{{2, 1, -1}, {3, 1, -2}})
	u, err := matrix.Echelon(m)
	require.NoError(t, err)
	// row1 += -3/2·row0 → [0, -1/2, -1/2]
	CompareExact(t, [][]string{{"2", "1", "-1"}, {"0", "-1/2", "-1/2"}}, u)
}

// TestEchelon_Fallback makes sure the non-*Dense path produces the same result.
func TestEchelon_Fallback(t *testing.T) {
	m := MustInts(t, [][]int64{{1, -1, 0}, {1, -1, 0}, {3, -2, -2}})

	fast, err := matrix.Echelon(m)
	require.NoError(t, err)
	slow, err := matrix.Echelon(hide{m})
	require.NoError(t, err)
	require.Equal(t, fast.String(), slow.String())
}

// TestEchelon_Singular covers every ErrSingular branch.
func TestEchelon_Singular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int64
	}{
		{"too few rows", [][]int64{{1, -1, 0}}},
		{"no pivot", [][]int64{{1, 1, 0}, {0, 0, 1}}},
		{"leftover row", [][]int64{{1, 0}, {0, 1}}},
		{"only trivial solution", [][]int64{{1, -1}, {1, -2}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Echelon(MustInts(t, tc.rows))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

// TestEchelon_Nil rejects nil inputs, including a typed nil.
func TestEchelon_Nil(t *testing.T) {
	_, err := matrix.Echelon(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense
	_, err = matrix.Echelon(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- BackSubstitute ----------

// TestBackSubstitute_Integers solves the KNO3 triangular system.
func TestBackSubstitute_Integers(t *testing.T) {
	u := MustInts(t, [][]int64{{1, -1, 0}, {0, 1, -2}})
	x, err := matrix.BackSubstitute(u)
	require.NoError(t, err)
	require.Equal(t, []string{"2", "2", "1"}, Strs(x))
}

// TestBackSubstitute_Fractions solves H2 + O2 = H2O, which yields 1/2.
func TestBackSubstitute_Fractions(t *testing.T) {
	u := MustInts(t, [][]int64{{2, 0, -2}, {0, 2, -1}})
	x, err := matrix.BackSubstitute(u)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "1/2", "1"}, Strs(x))

	// Fallback path agrees.
	y, err := matrix.BackSubstitute(hide{u})
	require.NoError(t, err)
	require.Equal(t, Strs(x), Strs(y))
}

// TestBackSubstitute_Errors covers shape, structure and zero pivots.
func TestBackSubstitute_Errors(t *testing.T) {
	_, err := matrix.BackSubstitute(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.BackSubstitute(MustInts(t, [][]int64{{1, 0}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.BackSubstitute(MustInts(t, [][]int64{{1, 0, 1}, {1, 1, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotTriangular)

	_, err = matrix.BackSubstitute(MustInts(t, [][]int64{{0, 1, 1}, {0, 1, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// ---------- MatVec / NullVector ----------

// TestMatVec verifies exact products and argument validation.
func TestMatVec(t *testing.T) {
	m := MustInts(t, [][]int64{{1, -1, 0}, {3, -2, -2}})

	y, err := matrix.MatVec(m, Rats(t, "2", "2", "1"))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "0"}, Strs(y))

	y, err = matrix.MatVec(hide{m}, Rats(t, "1/2", "0", "1"))
	require.NoError(t, err)
	require.Equal(t, []string{"1/2", "-1/2"}, Strs(y))

	_, err = matrix.MatVec(m, Rats(t, "1", "1"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	x := Rats(t, "1", "1", "1")
	x[1] = nil
	_, err = matrix.MatVec(m, x)
	require.ErrorIs(t, err, matrix.ErrNilValue)

	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNullVector chains elimination and back substitution and checks M·x = 0.
func TestNullVector(t *testing.T) {
	// Na, Cl, H, S, O for NaCl + H2SO4 = NaHSO4 + HCl (5 rows, 4 columns).
	m := MustInts(t, [][]int64{
		{1, 0, -1, 0},
		{1, 0, 0, -1},
		{0, 2, -1, -1},
		{0, 1, -1, 0},
		{0, 4, -4, 0},
	})

	x, err := matrix.NullVector(m)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "1", "1", "1"}, Strs(x))

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	for i, v := range y {
		require.Zerof(t, v.Sign(), "row %d residual %s", i, v.RatString())
	}

	_, err = matrix.NullVector(MustInts(t, [][]int64{{1, 0}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}
