package balance_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/equation"
	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/matrix"
)

// TestBuild_KNO3 checks signs, row order and the Cl/C distinction.
func TestBuild_KNO3(t *testing.T) {
	eq, err := equation.Parse("KNO3 = KNO2 + O2")
	require.NoError(t, err)

	m, elements, err := balance.Build(eq)
	require.NoError(t, err)
	require.Equal(t, []string{"K", "N", "O"}, elements)
	require.Equal(t, "[1, -1, 0]\n[1, -1, 0]\n[3, -2, -2]\n", m.String())
}

// TestBuild_TwoLetterSymbols keeps C and Cl in separate rows.
func TestBuild_TwoLetterSymbols(t *testing.T) {
	eq, err := equation.Parse("CH4 + Cl2 = CCl4 + HCl")
	require.NoError(t, err)

	m, elements, err := balance.Build(eq)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "H", "Cl"}, elements)
	assert.Equal(t, "[1, 0, -1, 0]\n[4, 0, 0, -1]\n[0, 2, -4, -1]\n", m.String())
}

// TestBuild_RepeatedElement sums repeated terms within one molecule.
func TestBuild_RepeatedElement(t *testing.T) {
	eq, err := equation.Parse("CH3COOH + O2 = CO2 + H2O")
	require.NoError(t, err)

	m, _, err := balance.Build(eq)
	require.NoError(t, err)
	v, err := m.At(0, 0) // C in CH3COOH
	require.NoError(t, err)
	require.Equal(t, "2", v.RatString())
}

// TestBuild_Empty rejects nil and one-sided equations.
func TestBuild_Empty(t *testing.T) {
	_, _, err := balance.Build(nil)
	require.ErrorIs(t, err, balance.ErrMalformedEquation)

	_, _, err = balance.Build(&equation.Equation{})
	require.ErrorIs(t, err, balance.ErrMalformedEquation)
}

// TestVerify covers the post-condition checks.
func TestVerify(t *testing.T) {
	eq, err := equation.Parse("H2 + O2 = H2O")
	require.NoError(t, err)

	require.NoError(t, balance.Verify(eq, []int64{2, 1, 2}))
	require.NoError(t, balance.Verify(eq, []int64{4, 2, 4}), "scaled solutions still conserve")
	require.ErrorIs(t, balance.Verify(eq, []int64{1, 1, 1}), balance.ErrNotConserved)
	require.ErrorIs(t, balance.Verify(eq, []int64{0, 1, 2}), balance.ErrNonPositive)
	require.ErrorIs(t, balance.Verify(eq, []int64{2, 1}), matrix.ErrDimensionMismatch)
}

// TestVerify_RecountsFormulas rejects coefficients that only balance a
// conservation matrix whose per-element totals wrapped around.
func TestVerify_RecountsFormulas(t *testing.T) {
	eq := &equation.Equation{
		Reactants: []formula.Molecule{{
			Formula: "H?",
			Terms:   []formula.Term{{Element: "H", Count: math.MaxInt}, {Element: "H", Count: math.MaxInt}, {Element: "H", Count: 4}},
		}},
		Products: []formula.Molecule{formula.MustParse("H")},
	}

	// The wrapped total is 2, which the matrix alone would accept.
	m, _, err := balance.Build(eq)
	require.NoError(t, err)
	y, err := matrix.MatVec(m, []*big.Rat{big.NewRat(1, 1), big.NewRat(2, 1)})
	require.NoError(t, err)
	require.Zero(t, y[0].Sign())

	err = balance.Verify(eq, []int64{1, 2})
	require.ErrorIs(t, err, balance.ErrNotConserved)
	require.Contains(t, err.Error(), "element H")
}
