// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"math"
	"strconv"
)

// Parse tokenizes a formula string into a Molecule.
//
// Implementation:
//   - Stage 1: reject empty input and a first byte that is not 'A'..'Z'.
//   - Stage 2: scan tokens: one uppercase letter, a run of lowercase letters,
//     then an optional run of digits.
//   - Stage 3: resolve the letter run against the periodic table (unless
//     lenient) and convert the digit run to a positive count.
//   - Stage 4: keep a running total per element; a total that would exceed
//     math.MaxInt is rejected, so Molecule.Count never wraps.
//
// The whole lowercase run belongs to the symbol, so "Cl" can never be split
// into "C" plus a stray letter, and "CO" stays carbon + oxygen.
//
// Errors:
//   - ErrInvalidFormula for structural problems and per-element totals
//     beyond math.MaxInt.
//   - ErrUnknownElement (matches ErrInvalidFormula) for symbols outside the table.
//
// Complexity: O(len(s)) time, O(tokens) space.
func Parse(s string, opts ...Option) (Molecule, error) {
	o := gatherOptions(opts)

	if s == "" {
		return Molecule{}, fmt.Errorf("formula %q: empty: %w", s, ErrInvalidFormula)
	}
	if !isUpper(s[0]) {
		return Molecule{}, fmt.Errorf("formula %q: must start with an uppercase letter: %w", s, ErrInvalidFormula)
	}

	terms := make([]Term, 0, len(s)/2+1)
	totals := make(map[string]int, len(s)/2+1)
	var (
		i, start int
		sym      string
		count    int
		err      error
	)
	for i < len(s) {
		if !isUpper(s[i]) {
			return Molecule{}, fmt.Errorf("formula %q: unexpected %q at %d: %w", s, s[i], i, ErrInvalidFormula)
		}

		// symbol: [A-Z][a-z]*
		start = i
		i++
		for i < len(s) && isLower(s[i]) {
			i++
		}
		sym = s[start:i]
		if !o.lenient && !IsElement(sym) {
			return Molecule{}, fmt.Errorf("formula %q: %q: %w", s, sym, ErrUnknownElement)
		}

		// count: [0-9]*
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		count = 1
		if i > start {
			count, err = strconv.Atoi(s[start:i])
			if err != nil {
				return Molecule{}, fmt.Errorf("formula %q: count %q: %w", s, s[start:i], ErrInvalidFormula)
			}
			if count == 0 {
				return Molecule{}, fmt.Errorf("formula %q: zero count for %s: %w", s, sym, ErrInvalidFormula)
			}
		}

		if totals[sym] > math.MaxInt-count {
			return Molecule{}, fmt.Errorf("formula %q: total count of %s overflows: %w", s, sym, ErrInvalidFormula)
		}
		totals[sym] += count
		terms = append(terms, Term{Element: sym, Count: count})
	}

	return Molecule{Formula: s, Terms: terms}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string, opts ...Option) Molecule {
	m, err := Parse(s, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
