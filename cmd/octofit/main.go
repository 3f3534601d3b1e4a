// Package main is the entry point for the octofit CLI.
//
// The binary has two subcommands sharing one configuration surface:
//
//	octofit serve   → run the REST API server
//	octofit seed    → wipe and repopulate the database with fixture data
//
// All actual logic lives in imported packages (internal/server,
// internal/seed, etc.) — this package only parses flags/env and wires the
// pieces together.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
