// Package main is the entry point for the ocimeta CLI.
//
// ocimeta resolves OCI image-label metadata (title, version, authors, and
// friends) from a project's package manifest and emits it as a build-arg
// file for container builds. All command wiring lives in internal/cli; this
// package only injects build-time version information and sets the exit
// code.
package main

import (
	"os"

	"ocimeta/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
