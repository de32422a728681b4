// cmd/gapdash/main.go
package main

import (
	cmd "github.com/mwiater/gapdash/internal/cli"
)

// Build metadata, set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Hooks swapped out in tests.
var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the gapdash CLI application by delegating to the
// cobra root command defined in the gapdash package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
