// ABOUTME: Main entry point for the corpusprep CLI
// ABOUTME: Sets up the Cobra root command and maps failures to exit codes
package main

import (
	"fmt"
	"os"

	"github.com/harper/corpusprep/cmd/corpusprep/commands"
	"github.com/harper/corpusprep/internal/faults"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set version info for commands
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(faults.Classify(err).ExitCode())
	}
}
