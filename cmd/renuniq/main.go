// Command renuniq renames batches of files from a naming template.
//
// It parses flags and rc files, selects a template, and runs the sequential
// rename pipeline. Exit status is 0 only when every file was renamed.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/renuniq/internal/config"
	"github.com/backmassage/renuniq/internal/logging"
	"github.com/backmassage/renuniq/internal/pipeline"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "2.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "renuniq: %v\n", err)
		return 1
	}

	if cfg.ShowLicense {
		fmt.Print(licenseText)
		return 0
	}
	if cfg.ShowVersion {
		fmt.Println("renuniq v" + version)
		return 0
	}

	// Rc files are read before help so usage shows the effective default
	// templates, not the shipped ones.
	if err := config.LoadRCFiles(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "renuniq: %v\n", err)
		return 1
	}

	if cfg.ShowHelp || len(cfg.Names) == 0 {
		config.PrintUsage(&cfg, version)
		return 1
	}

	cfg.ResolveTemplate()

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "renuniq: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Run the batch to completion; per-file errors are counted,
	// not fatal, and successful renames are never rolled back.
	stats := pipeline.Run(&cfg, log)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
