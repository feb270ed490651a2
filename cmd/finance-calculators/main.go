// Package main is the entry point for the finance-calculators site and CLI.
package main

import (
	"os"

	"github.com/iwvelando/finance-calculators/cmd/finance-calculators/cmd"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cmd.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
