// Package main is the entry point for the casecost CLI.
package main

import (
	"os"

	"casecost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
