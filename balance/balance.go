// SPDX-License-Identifier: MIT

package balance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/chembalance/equation"
	"github.com/katalvlaran/chembalance/matrix"
)

// Term pairs a molecule formula with its balanced coefficient.
type Term struct {
	Formula     string
	Coefficient int64
}

// Result is a balanced equation. Terms follow column order: reactants, then
// products, each in source order.
type Result struct {
	Equation *equation.Equation
	Terms    []Term
}

// Coefficients returns the coefficients in column order.
func (r *Result) Coefficients() []int64 {
	if r == nil {
		return nil
	}
	out := make([]int64, len(r.Terms))
	for i, t := range r.Terms {
		out[i] = t.Coefficient
	}

	return out
}

// Reactants returns the left-hand terms; nil for a Result not built by
// Balance.
func (r *Result) Reactants() []Term {
	if n, ok := r.split(); ok {
		return r.Terms[:n]
	}

	return nil
}

// Products returns the right-hand terms; nil for a Result not built by
// Balance.
func (r *Result) Products() []Term {
	if n, ok := r.split(); ok {
		return r.Terms[n:]
	}

	return nil
}

// split returns the index of the first product term, or false when r does
// not carry a consistent Equation/Terms pair.
func (r *Result) split() (int, bool) {
	if r == nil || r.Equation == nil {
		return 0, false
	}
	n := len(r.Equation.Reactants)
	if n > len(r.Terms) {
		return 0, false
	}

	return n, true
}

// String renders the balanced equation, e.g. "2 H2 + O2 = 2 H2O".
// Coefficients of 1 are omitted.
func (r *Result) String() string {
	return formatSide(r.Reactants()) + " = " + formatSide(r.Products())
}

func formatSide(ts []Term) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		if t.Coefficient == 1 {
			parts[i] = t.Formula
			continue
		}
		parts[i] = strconv.FormatInt(t.Coefficient, 10) + " " + t.Formula
	}

	return strings.Join(parts, " + ")
}

// Balance parses text and returns the minimal positive integer coefficients
// balancing it.
//
// Implementation:
//   - Stage 1: equation.Parse (ErrMalformedEquation, ErrInvalidFormula).
//   - Stage 2: Build the conservation matrix.
//   - Stage 3: matrix.Echelon + matrix.BackSubstitute with the last
//     coefficient fixed to 1 (ErrSingular).
//   - Stage 4: Rationalize to minimal positive integers (ErrSingular on
//     zero or mixed-sign solutions, ErrCoefficientOverflow).
//   - Stage 5: Verify conservation and positivity as a post-condition.
//
// Errors are returned as soon as a stage fails; there are no partial results.
// Balance touches no shared state and may be called concurrently.
func Balance(text string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	log := o.logger
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	eq, err := equation.Parse(text, o.formulaOpts...)
	if err != nil {
		return nil, err
	}
	if debug {
		log.Debug("parsed equation", "equation", eq.String(),
			"reactants", len(eq.Reactants), "products", len(eq.Products))
	}

	m, elements, err := Build(eq)
	if err != nil {
		return nil, err
	}
	if debug {
		log.Debug("conservation matrix", "elements", elements, "matrix", m.String())
	}

	u, err := matrix.Echelon(m)
	if err != nil {
		return nil, explainSingular(eq, err)
	}
	if debug {
		log.Debug("reduced matrix", "matrix", u.String())
	}

	x, err := matrix.BackSubstitute(u)
	if err != nil {
		return nil, explainSingular(eq, err)
	}
	if debug {
		log.Debug("rational solution", "x", ratStrings(x))
	}

	coeffs, err := Rationalize(x)
	if err != nil {
		return nil, explainSingular(eq, err)
	}
	if err = Verify(eq, coeffs); err != nil {
		return nil, err
	}

	res := &Result{Equation: eq, Terms: make([]Term, len(coeffs))}
	for i, mol := range eq.Molecules() {
		res.Terms[i] = Term{Formula: mol.Formula, Coefficient: coeffs[i]}
	}
	if debug {
		log.Debug("balanced", "result", res.String())
	}

	return res, nil
}

// explainSingular adds the number of independent sub-reactions to an
// ErrSingular failure when the equation decomposes.
func explainSingular(eq *equation.Equation, err error) error {
	if !errors.Is(err, ErrSingular) {
		return err
	}
	if n := len(eq.Components()); n > 1 {
		return fmt.Errorf("equation splits into %d independent reactions: %w", n, err)
	}

	return err
}

// Verify checks that coefficients balance eq: every coefficient is positive,
// M·x = 0 for its conservation matrix, and a direct big.Int recount of every
// formula term agrees. The recount is independent of Build.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(coefficients) != number of molecules.
//   - ErrNonPositive for a coefficient ≤ 0.
//   - ErrNotConserved naming the first unbalanced element.
func Verify(eq *equation.Equation, coefficients []int64) error {
	m, elements, err := Build(eq)
	if err != nil {
		return err
	}
	if len(coefficients) != m.Cols() {
		return fmt.Errorf("Verify: %d coefficients for %d molecules: %w", len(coefficients), m.Cols(), matrix.ErrDimensionMismatch)
	}

	x := make([]*big.Rat, len(coefficients))
	for i, c := range coefficients {
		if c <= 0 {
			return fmt.Errorf("Verify: molecule #%d has coefficient %d: %w", i+1, c, ErrNonPositive)
		}
		x[i] = new(big.Rat).SetInt64(c)
	}

	y, err := matrix.MatVec(m, x)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	for e, v := range y {
		if v.Sign() != 0 {
			return fmt.Errorf("Verify: element %s off by %s: %w", elements[e], v.RatString(), ErrNotConserved)
		}
	}

	return recount(eq, coefficients)
}

// recount sums coefficient·count per element straight from the parsed terms,
// products subtracted, and fails on the first nonzero balance in catalog
// order.
func recount(eq *equation.Equation, coefficients []int64) error {
	var (
		order []string
		bal   = make(map[string]*big.Int)
		c     = new(big.Int)
		n     = new(big.Int)
	)
	for i, mol := range eq.Molecules() {
		c.SetInt64(coefficients[i])
		if eq.IsProduct(i) {
			c.Neg(c)
		}
		for _, t := range mol.Terms {
			acc, ok := bal[t.Element]
			if !ok {
				acc = new(big.Int)
				bal[t.Element] = acc
				order = append(order, t.Element)
			}
			n.SetInt64(int64(t.Count))
			acc.Add(acc, n.Mul(n, c))
		}
	}
	for _, el := range order {
		if bal[el].Sign() != 0 {
			return fmt.Errorf("Verify: element %s off by %s: %w", el, bal[el].String(), ErrNotConserved)
		}
	}

	return nil
}

func ratStrings(x []*big.Rat) []string {
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = v.RatString()
	}

	return out
}
