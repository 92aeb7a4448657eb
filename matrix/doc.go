// Package matrix provides an exact rational dense matrix and the elimination
// kernels used to solve homogeneous linear systems with one free parameter.
//
// The matrix package provides:
//
//   - Dense: row-major storage of *big.Rat values with safe accessors that
//     return sentinel errors instead of panicking.
//   - Echelon: forward Gaussian elimination with first-nonzero partial
//     pivoting, returning a new upper-triangular matrix.
//   - BackSubstitute: solves an r×(r+1) triangular system with the last
//     unknown fixed to 1.
//   - MatVec: exact matrix–vector product, used to verify solutions.
//
// All arithmetic is exact; zero tests never depend on a tolerance. Inputs are
// never mutated: every kernel works on its own copy.
package matrix
