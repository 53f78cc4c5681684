// Package cli implements the command-line interface for Clipman
package cli

import (
	cmdpkg "github.com/berrythewa/clipman-termux/internal/cli/cmd"
)

// SetVersionInfo passes build metadata to the version command.
func SetVersionInfo(version, buildTime, commit string) {
	cmdpkg.SetVersionInfo(version, buildTime, commit)
}

// Execute runs the clipman command tree.
func Execute() {
	cmdpkg.Execute()
}
