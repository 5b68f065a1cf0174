package main

import (
	"errors"
	"os"

	"github.com/goliatone/go-biodata/internal/cli"
)

// Build-time values injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
