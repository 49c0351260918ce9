// Package main is the entry point for the mailprov CLI.
//
// mailprov onboards tenant organizations on a multi-tenant mail platform
// by issuing a short, ordered sequence of management API calls: create a
// tenant, create a domain bound to that tenant, and create an
// administrator account bound to both.
//
// Commands: provision, init, version, completion.
//
// For detailed usage information, run:
//
//	mailprov --help
package main

import (
	"fmt"
	"os"

	"github.com/mailprov/mailprov/cmd/mailprov/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
