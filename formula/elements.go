// SPDX-License-Identifier: MIT

package formula

// symbols lists the IUPAC element symbols in atomic-number order (H=1 … Og=118).
var symbols = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// table is the lookup view of symbols, built once at init and never mutated.
var table = func() map[string]int {
	t := make(map[string]int, len(symbols))
	for i, s := range symbols {
		t[s] = i + 1 // atomic number
	}

	return t
}()

// IsElement reports whether symbol is a known element symbol (case-sensitive).
func IsElement(symbol string) bool { return AtomicNumber(symbol) != 0 }

// AtomicNumber returns the atomic number of symbol, or 0 when unknown.
func AtomicNumber(symbol string) int { return table[symbol] }

// Symbols returns a fresh copy of all element symbols in atomic-number order.
func Symbols() []string {
	out := make([]string, len(symbols))
	copy(out, symbols[:])

	return out
}
