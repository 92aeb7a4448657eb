// SPDX-License-Identifier: MIT

package balance

import (
	"errors"

	"github.com/katalvlaran/chembalance/equation"
	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/matrix"
)

// The three failure families of Balance. They are the very same sentinel
// values exported by the lower packages, so errors.Is matches either name.
var (
	// ErrMalformedEquation: missing or duplicated "=", empty side or molecule.
	ErrMalformedEquation = equation.ErrMalformedEquation

	// ErrInvalidFormula: a molecule is not a valid formula string.
	ErrInvalidFormula = formula.ErrInvalidFormula

	// ErrSingular: the system has no positive solution or more than one
	// degree of freedom.
	ErrSingular = matrix.ErrSingular
)

var (
	// ErrCoefficientOverflow indicates a coefficient that does not fit int64.
	ErrCoefficientOverflow = errors.New("balance: coefficient overflows int64")

	// ErrNotConserved indicates coefficients that leave some element unbalanced.
	ErrNotConserved = errors.New("balance: atoms not conserved")

	// ErrNonPositive indicates a coefficient that is zero or negative.
	ErrNonPositive = errors.New("balance: coefficient is not positive")
)
