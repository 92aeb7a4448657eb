// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/chembalance/formula"
)

const (
	sideSep     = "="
	moleculeSep = "+"
)

// side names used in error context
const (
	sideLeft  = "left"
	sideRight = "right"
)

// Equation is a parsed chemical equation. Neither side is empty for a value
// returned by Parse.
type Equation struct {
	Reactants []formula.Molecule // left-hand side, in source order
	Products  []formula.Molecule // right-hand side, in source order
}

// Split separates raw equation text into trimmed molecule strings for the
// left and right sides.
//
// Errors:
//   - ErrMalformedEquation when "=" is missing or appears more than once,
//     when a side is blank, or when a "+" leaves an empty molecule.
//
// Complexity: O(len(text)).
func Split(text string) (left, right []string, err error) {
	parts := strings.Split(text, sideSep)
	switch {
	case len(parts) < 2:
		return nil, nil, fmt.Errorf("equation %q: missing %q: %w", text, sideSep, ErrMalformedEquation)
	case len(parts) > 2:
		return nil, nil, fmt.Errorf("equation %q: %d %q separators: %w", text, len(parts)-1, sideSep, ErrMalformedEquation)
	}

	if left, err = splitSide(text, sideLeft, parts[0]); err != nil {
		return nil, nil, err
	}
	if right, err = splitSide(text, sideRight, parts[1]); err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

// splitSide splits one side on "+" and trims every molecule.
func splitSide(text, name, side string) ([]string, error) {
	if strings.TrimSpace(side) == "" {
		return nil, fmt.Errorf("equation %q: empty %s side: %w", text, name, ErrMalformedEquation)
	}

	raw := strings.Split(side, moleculeSep)
	out := make([]string, 0, len(raw))
	for i, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, fmt.Errorf("equation %q: empty molecule #%d on %s side: %w", text, i+1, name, ErrMalformedEquation)
		}
		out = append(out, r)
	}

	return out, nil
}

// Parse splits text and parses every molecule on both sides.
// Formula errors keep their formula.ErrInvalidFormula identity and gain the
// side and position of the offending molecule.
func Parse(text string, opts ...formula.Option) (*Equation, error) {
	left, right, err := Split(text)
	if err != nil {
		return nil, err
	}

	eq := &Equation{}
	if eq.Reactants, err = parseSide(sideLeft, left, opts); err != nil {
		return nil, err
	}
	if eq.Products, err = parseSide(sideRight, right, opts); err != nil {
		return nil, err
	}

	return eq, nil
}

func parseSide(name string, src []string, opts []formula.Option) ([]formula.Molecule, error) {
	out := make([]formula.Molecule, len(src))
	var err error
	for i, s := range src {
		if out[i], err = formula.Parse(s, opts...); err != nil {
			return nil, fmt.Errorf("%s side molecule #%d: %w", name, i+1, err)
		}
	}

	return out, nil
}

// Molecules returns reactants followed by products: the column order of the
// conservation matrix.
func (e *Equation) Molecules() []formula.Molecule {
	out := make([]formula.Molecule, 0, len(e.Reactants)+len(e.Products))
	out = append(out, e.Reactants...)

	return append(out, e.Products...)
}

// IsProduct reports whether column i refers to a product molecule.
func (e *Equation) IsProduct(i int) bool { return i >= len(e.Reactants) }

// Elements returns the element catalog: every element of every molecule
// exactly once, ordered by first occurrence scanning reactants then products.
// Complexity: O(total terms).
func (e *Equation) Elements() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range e.Molecules() {
		for _, t := range m.Terms {
			if _, ok := seen[t.Element]; ok {
				continue
			}
			seen[t.Element] = struct{}{}
			out = append(out, t.Element)
		}
	}

	return out
}

// Components groups molecule columns that are linked through shared
// elements. Each group lists column indices in ascending order; groups are
// ordered by their smallest column. An equation with more than one group is
// a sum of independent reactions and has more than one degree of freedom.
//
// Time: O(M²·T) for M molecules of at most T terms; equations are small.
func (e *Equation) Components() [][]int {
	mols := e.Molecules()
	n := len(mols)
	seen := make([]bool, n)
	var comps [][]int

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS over "shares an element" adjacency
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := 0; v < n; v++ {
				if !seen[v] && sharesElement(mols[u], mols[v]) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

func sharesElement(a, b formula.Molecule) bool {
	for _, t := range a.Terms {
		if b.Count(t.Element) > 0 {
			return true
		}
	}

	return false
}

// String renders the equation as "A + B = C + D" using the source formulas.
func (e *Equation) String() string {
	return joinSide(e.Reactants) + " " + sideSep + " " + joinSide(e.Products)
}

func joinSide(ms []formula.Molecule) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.Formula
	}

	return strings.Join(parts, " "+moleculeSep+" ")
}
