// Package main is the entry point for the adofetch CLI.
package main

import (
	"os"

	"github.com/azdo-tools/adofetch/cmd"
	"github.com/azdo-tools/adofetch/internal/logging"
)

// main executes the root command. The command writes its own user-facing
// output (the success record or a JSON error envelope), so a returned error
// only needs to be mapped to a non-zero exit status here.
func main() {
	logging.Debug("starting adofetch", "version", "1.0.0")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
