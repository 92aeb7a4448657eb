// Package formula parses chemical formula strings into ordered element counts.
//
// 🚀 What is a formula here?
//
//	A formula is a run of ElementSymbol[Count] tokens with no spaces,
//	parentheses, hydrate dots or charges:
//	  • "H2O"    → H×2, O×1
//	  • "NaHSO4" → Na×1, H×1, S×1, O×4
//	  • "C6H12O6"
//
// ✨ Key features:
//   - greedy longest-match against the 118 IUPAC symbols, so "Cl" is never
//     read as "C" followed by a stray "l"
//   - lenient mode (WithLenientSymbols) accepting any [A-Z][a-z]* symbol
//   - sentinel errors (ErrInvalidFormula, ErrUnknownElement) for errors.Is
//
// ⚙️ Usage:
//
//	m, err := formula.Parse("H2SO4")
//	if err != nil {
//	  // errors.Is(err, formula.ErrInvalidFormula)
//	}
//	fmt.Println(m.Count("O")) // 4
//
// Complexity: O(len(s)) per formula.
package formula
