// SPDX-License-Identifier: MIT

package balance

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/chembalance/formula"
)

// panic messages for programmer errors in option constructors
const panicNilLogger = "balance: WithLogger: logger must not be nil"

// Option configures Balance.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	formulaOpts []formula.Option
}

// WithLogger routes stage-by-stage debug records (parsed equation, matrix,
// reduced matrix, rational solution, coefficients) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithLenientSymbols accepts any [A-Z][a-z]* element symbol instead of
// requiring a periodic-table entry.
func WithLenientSymbols() Option {
	return func(o *options) { o.formulaOpts = append(o.formulaOpts, formula.WithLenientSymbols()) }
}

func gatherOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
