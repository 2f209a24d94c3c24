// SPDX-License-Identifier: MIT

// Command manifold loads a manifold diagram and prints how many splitters
// the beams hit and how many timelines a single beam can follow.
//
//	manifold [-diagram path] [-memory full|rows] [-v] [diagram]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/manifold/beam"
	"github.com/katalvlaran/manifold/grid"
)

// errUsage marks command-line misuse.
var errUsage = errors.New("usage")

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code. environ replaces the
// process environment when non-nil.
func run(args []string, environ map[string]string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "manifold: ", 0)

	cfg, err := loadConfig(args, environ, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case err != nil:
		logger.Print(err)
		return exitUsage
	}

	g, err := grid.ReadFile(cfg.Diagram)
	if err != nil {
		logger.Print(err)
		return exitError
	}

	opts := []beam.Option{beam.WithMemoryMode(cfg.Memory)}
	if cfg.Verbose {
		logger.Printf("loaded %s: %d×%d, %d splitters", cfg.Diagram, g.Width(), g.Height(), g.Splitters())
		opts = append(opts,
			beam.WithOnFrontier(func(row int, cols []int) {
				logger.Printf("splits: row %d beams %v", row, cols)
			}),
			beam.WithOnRow(func(row int, ways []uint64) {
				logger.Printf("timelines: row %d ways %v", row, ways)
			}),
		)
	}

	rep, err := beam.Analyze(g, opts...)
	if err != nil {
		logger.Printf("%s: %v", cfg.Diagram, err)
		return exitError
	}

	fmt.Fprintln(stdout, rep)
	return exitOK
}
