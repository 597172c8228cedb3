package main

import (
	"os"

	"hwreport/cmd/hwreport/commands"
)

// main is the entry point of the weekly report CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
