// Package chembalance balances chemical equations with exact rational
// arithmetic.
//
// 🚀 What does it do?
//
//	Given "KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2" it finds the smallest
//	positive integers that conserve every element:
//
//		2 KMnO4 + 16 HCl = 2 KCl + 2 MnCl2 + 8 H2O + 5 Cl2
//
// ✨ How?
//
//   - formula/  tokenizes "C6H12O6" into ordered (element, count) terms
//   - equation/ splits "lhs = rhs" into reactant and product molecules
//   - matrix/   exact big.Rat Gaussian elimination and back substitution
//   - balance/  builds the conservation matrix and turns its null vector
//     into minimal integer coefficients
//
// The command-line front end lives in cmd/chembalance:
//
//	go install github.com/katalvlaran/chembalance/cmd/chembalance@latest
//	chembalance "Fe + O2 = Fe2O3"
package chembalance
