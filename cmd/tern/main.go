// Package main is the entry point for the tern editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ternedit/tern/internal/config"
	"github.com/ternedit/tern/internal/editor"
	"github.com/ternedit/tern/internal/engine/buffer"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts, paths, configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log := editor.OpenLogger()

	if err := editor.Run(paths, cfg, log, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (buffer.LoadOptions, []string, string) {
	var opts buffer.LoadOptions
	var configPath string
	var showVersion bool

	flag.BoolVar(&opts.ReadOnly, "readonly", false, "Open file(s) as read-only")
	flag.BoolVar(&opts.ReadOnly, "r", false, "Open file(s) as read-only (shorthand)")
	flag.BoolVar(&opts.Truncate, "truncate", false, "Truncate existing file(s)")
	flag.BoolVar(&opts.Truncate, "t", false, "Truncate existing file(s) (shorthand)")
	flag.StringVar(&configPath, "config", config.Path(), "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tern [options] [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("tern %s\n", version)
		os.Exit(0)
	}

	if opts.ReadOnly && opts.Truncate {
		fmt.Fprintln(os.Stderr, "Error: cannot truncate files in read-only mode")
		os.Exit(1)
	}

	return opts, flag.Args(), configPath
}
