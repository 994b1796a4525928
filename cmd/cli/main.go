// Package main is the entry point for the enterprise-quote CLI.
package main

import (
	"os"

	"enterprise-quote/cmd/cli/cmd"
	"enterprise-quote/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
