package main

import (
	"github.com/berrythewa/clipman-termux/internal/cli"
)

var (
	version   = "dev"
	buildTime = "unknown"
	commit    = "none"
)

func main() {
	cli.SetVersionInfo(version, buildTime, commit)
	cli.Execute()
}
