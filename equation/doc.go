// Package equation splits chemical equation text into parsed reactant and
// product molecules and derives the element catalog used as the row index of
// the conservation matrix.
//
// Accepted grammar (whitespace around tokens is ignored):
//
//	equation := side "=" side
//	side     := molecule ("+" molecule)*
//
// Molecules are parsed with package formula.
//
// Column order used everywhere downstream is reactants first, then products,
// each in their original order. The element catalog lists each element once
// in first-seen order while scanning that same column order.
package equation
