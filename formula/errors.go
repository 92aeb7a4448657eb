// SPDX-License-Identifier: MIT

package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormula is returned for any string that is not a valid
	// ElementSymbol[Count] sequence: empty input, a leading character that is
	// not an uppercase letter, characters outside [A-Za-z0-9], a zero count or
	// a count that does not fit an int.
	ErrInvalidFormula = errors.New("formula: invalid formula")

	// ErrUnknownElement is returned when a symbol is not in the periodic table.
	// It always matches ErrInvalidFormula as well.
	ErrUnknownElement = fmt.Errorf("%w: unknown element symbol", ErrInvalidFormula)
)
