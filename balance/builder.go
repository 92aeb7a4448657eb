// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"

	"github.com/katalvlaran/chembalance/equation"
	"github.com/katalvlaran/chembalance/matrix"
)

// Build returns the conservation matrix of eq and its row labels.
//
// Rows follow eq.Elements(); columns follow eq.Molecules() (reactants, then
// products). Entry (e, i) is the number of atoms of element e in molecule i,
// negated when molecule i is a product, so that M·x = 0 expresses
// conservation of every element.
//
// Errors:
//   - ErrMalformedEquation when eq is nil or a side is empty.
//
// Complexity: O(|elements| · Σ terms).
func Build(eq *equation.Equation) (*matrix.Dense, []string, error) {
	if eq == nil || len(eq.Reactants) == 0 || len(eq.Products) == 0 {
		return nil, nil, fmt.Errorf("Build: empty side: %w", ErrMalformedEquation)
	}

	elements := eq.Elements()
	mols := eq.Molecules()
	m, err := matrix.NewDense(len(elements), len(mols))
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}

	var (
		e, i  int
		count int64
	)
	for e = range elements {
		for i = range mols {
			count = int64(mols[i].Count(elements[e]))
			if eq.IsProduct(i) {
				count = -count
			}
			if err = m.SetInt64(e, i, count); err != nil {
				return nil, nil, fmt.Errorf("Build: %w", err)
			}
		}
	}

	return m, elements, nil
}
