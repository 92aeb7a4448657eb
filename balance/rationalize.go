// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math/big"
)

// Rationalize scales a rational solution vector to the minimal vector of
// positive integers pointing the same way.
//
// Implementation:
//   - Stage 1: sign policy. Every entry must be nonzero and all entries must
//     share one sign; an all-negative vector is negated.
//   - Stage 2: L = lcm of all (lowest-terms) denominators; n_i = x_i·L.
//   - Stage 3: divide by gcd(n_1…n_k) so the result is minimal.
//   - Stage 4: convert to int64.
//
// Errors:
//   - ErrSingular for an empty vector, a zero entry or mixed signs.
//   - ErrCoefficientOverflow when a coefficient does not fit int64.
//
// Complexity: O(k) big-integer operations.
func Rationalize(x []*big.Rat) ([]int64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Rationalize: empty solution: %w", ErrSingular)
	}

	var pos, neg int
	for i, v := range x {
		if v == nil {
			return nil, fmt.Errorf("Rationalize: x[%d] is nil: %w", i, ErrSingular)
		}
		switch v.Sign() {
		case 0:
			return nil, fmt.Errorf("Rationalize: molecule #%d gets coefficient 0: %w", i+1, ErrSingular)
		case 1:
			pos++
		default:
			neg++
		}
	}
	if pos > 0 && neg > 0 {
		return nil, fmt.Errorf("Rationalize: mixed signs (%d positive, %d negative): %w", pos, neg, ErrSingular)
	}

	// lcm of denominators; big.Rat keeps values in lowest terms.
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, v := range x {
		g.GCD(nil, nil, lcm, v.Denom())
		lcm.Div(lcm, g)
		lcm.Mul(lcm, v.Denom())
	}

	ints := make([]*big.Int, len(x))
	for i, v := range x {
		n := new(big.Int).Div(lcm, v.Denom())
		n.Mul(n, v.Num())
		n.Abs(n) // all entries share a sign; drop it
		ints[i] = n
	}

	// Divide out any common factor left.
	g.Set(ints[0])
	for _, n := range ints[1:] {
		g.GCD(nil, nil, g, n)
	}

	out := make([]int64, len(ints))
	for i, n := range ints {
		n.Div(n, g)
		if !n.IsInt64() {
			return nil, fmt.Errorf("Rationalize: molecule #%d coefficient %s: %w", i+1, n.String(), ErrCoefficientOverflow)
		}
		out[i] = n.Int64()
	}

	return out, nil
}
