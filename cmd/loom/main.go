// Command loom is the workspace CLI: it runs editing sessions and manages
// the styles, templates, and assets persisted for a workspace.
package main

import (
	"os"

	"github.com/go-loom/loom/cmd/loom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
