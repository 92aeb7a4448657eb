// SPDX-License-Identifier: MIT

// Command chembalance balances chemical equations given as arguments, or one
// per line on standard input when no arguments are passed.
//
//	chembalance "H2 + O2 = H2O" "KNO3 = KNO2 + O2"
//	echo "C3H8 + O2 = CO2 + H2O" | chembalance -v
//
// Balanced equations go to stdout, one per line. Failures are logged to
// stderr and the exit status is 1 if any equation could not be balanced.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/chembalance/balance"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chembalance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log every balancing stage")
	lenient := fs.Bool("lenient", false, "accept element symbols outside the periodic table")
	noColor := fs.Bool("no-color", false, "disable colored log output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: chembalance [flags] [equation ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    *noColor,
	}))

	opts := []balance.Option{balance.WithLogger(logger)}
	if *lenient {
		opts = append(opts, balance.WithLenientSymbols())
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(stdin); err != nil {
			logger.Error("reading input", "err", err)

			return exitFailed
		}
	}

	status := exitOK
	for _, in := range inputs {
		res, err := balance.Balance(in, opts...)
		if err != nil {
			logger.Error("cannot balance", "equation", in, "err", err)
			status = exitFailed
			continue
		}
		fmt.Fprintln(stdout, res)
	}

	return status
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}

	return out, sc.Err()
}
