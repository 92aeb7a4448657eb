// SPDX-License-Identifier: MIT

package equation

import "errors"

// ErrMalformedEquation indicates a structural problem with the equation text:
// a missing or duplicated "=", an empty side, or an empty molecule between
// "+" separators.
var ErrMalformedEquation = errors.New("equation: malformed equation")
