// zipzap is a CLI tool that validates postal codes and regenerates the per-country format table.
package main

import (
	"github.com/hightemp/zipzap/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
