// Package balance computes the smallest positive integer coefficients that
// balance a chemical equation.
//
// 🚀 Pipeline
//
//	text ─Split/Parse─▶ molecules ─Elements─▶ catalog ─Build─▶ M (elements × molecules)
//	M ─Echelon─▶ U ─BackSubstitute (x_last = 1)─▶ x ∈ ℚⁿ ─Rationalize─▶ coefficients ∈ ℕⁿ
//
// Each product column of M is negated, so "atoms in = atoms out" becomes the
// single homogeneous system M·x = 0. Everything is exact rational arithmetic.
//
// ⚙️ Usage:
//
//	res, err := balance.Balance("KNO3 = KNO2 + O2")
//	if err != nil {
//	  // errors.Is(err, balance.ErrMalformedEquation | ErrInvalidFormula | ErrSingular)
//	}
//	fmt.Println(res) // 2 KNO3 = 2 KNO2 + O2
//
// Balance is a pure function of its input and is safe for concurrent use.
// Equations with no positive solution, or with more than one independent
// solution family, fail with ErrSingular.
package balance
