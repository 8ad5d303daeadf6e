// Package main is the entry point for the nuagex CLI.
//
// nuagex is a command-line tool for provisioning sandbox labs on the
// Nokia NuageX platform. It takes a declarative description of a lab
// (name, desired state, template) and drives the platform to match it,
// waiting for the lab to converge before reporting the result.
//
// Commands: init, apply, status, destroy, templates.
//
// For detailed usage information, run:
//
//	nuagex --help
package main

import (
	"fmt"
	"os"

	"github.com/xlab-si/nuagex/cmd/nuagex/commands"
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
