// main.go
//
// Entry point for the wordle binary.
// Subcommands (see internal/cli):
//   - play:          terminal game (bubbletea).
//   - serve:         HTTP API on PORT (chi + JWT game tokens).
//   - words import:  copy word lists into a SQLite database.
//   - version:       build information.

package main

import (
	"os"

	"github.com/robalobadob/wordle/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.NewRootCommand(version, commit, date).Execute(); err != nil {
		os.Exit(1)
	}
}
