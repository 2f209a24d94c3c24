// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/manifold/beam"
)

// envPrefix namespaces every environment variable read by the CLI.
const envPrefix = "MANIFOLD_"

// Config holds the CLI settings. Environment variables provide the
// defaults; command-line flags override them.
type Config struct {
	Diagram string          `env:"DIAGRAM" envDefault:"manifold_diagram.txt"`
	Memory  beam.MemoryMode `env:"MEMORY" envDefault:"full"`
	Verbose bool            `env:"VERBOSE"`
}

// loadConfig parses environ (the process environment when nil) and then
// args. A single positional argument is taken as the diagram path.
func loadConfig(args []string, environ map[string]string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("manifold", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: manifold [flags] [diagram]")
		fmt.Fprintln(fs.Output(), "Counts beam splits and possible timelines in a manifold diagram.")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Diagram, "diagram", cfg.Diagram, "path to the manifold diagram ($"+envPrefix+"DIAGRAM)")
	fs.TextVar(&cfg.Memory, "memory", cfg.Memory, "timeline table storage: full or rows ($"+envPrefix+"MEMORY)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log every propagated row ($"+envPrefix+"VERBOSE)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Diagram = fs.Arg(0)
	default:
		fs.Usage()
		return Config{}, fmt.Errorf("%w: expected at most one diagram, got %d", errUsage, fs.NArg())
	}
	return cfg, nil
}
