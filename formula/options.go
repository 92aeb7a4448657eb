// SPDX-License-Identifier: MIT

package formula

// DefaultLenientSymbols keeps symbol validation against the periodic table on.
const DefaultLenientSymbols = false

// Option configures Parse. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	lenient bool // accept any [A-Z][a-z]* symbol without table lookup
}

// WithLenientSymbols disables the periodic-table lookup: any uppercase letter
// followed by lowercase letters is taken as a symbol. Useful for placeholder
// species such as "Xy" in textbook exercises.
func WithLenientSymbols() Option {
	return func(o *options) { o.lenient = true }
}

func gatherOptions(opts []Option) options {
	o := options{lenient: DefaultLenientSymbols}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
