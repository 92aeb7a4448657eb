// SPDX-License-Identifier: MIT

package formula

import "strconv"

// Term is one ElementSymbol[Count] token of a formula.
type Term struct {
	Element string // element symbol, e.g. "Cl"
	Count   int    // ≥ 1; defaults to 1 when no digits follow the symbol
}

// Molecule is a parsed formula: the source string and its terms in
// left-to-right order. Repeated elements (e.g. "CH3COOH") are kept as
// separate terms; use Count for the per-element total.
type Molecule struct {
	Formula string // trimmed source text
	Terms   []Term // ordered tokens, never empty for a parsed Molecule
}

// Count returns the total number of atoms of element in m (0 if absent).
// Parse guarantees the total fits an int; a hand-built Molecule must keep
// the same bound.
// Complexity: O(len(Terms)).
func (m Molecule) Count(element string) int {
	var n int
	for _, t := range m.Terms {
		if t.Element == element {
			n += t.Count
		}
	}

	return n
}

// Elements returns the distinct element symbols of m in first-seen order.
func (m Molecule) Elements() []string {
	seen := make(map[string]struct{}, len(m.Terms))
	out := make([]string, 0, len(m.Terms))
	for _, t := range m.Terms {
		if _, ok := seen[t.Element]; ok {
			continue
		}
		seen[t.Element] = struct{}{}
		out = append(out, t.Element)
	}

	return out
}

// String renders the terms back into formula text, omitting counts of 1.
func (m Molecule) String() string {
	var b []byte
	for _, t := range m.Terms {
		b = append(b, t.Element...)
		if t.Count != 1 {
			b = strconv.AppendInt(b, int64(t.Count), 10)
		}
	}

	return string(b)
}
