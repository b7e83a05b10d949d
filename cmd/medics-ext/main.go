// Package main provides the entry point for the medics-ext CLI.
package main

import (
	"os"

	"github.com/medics-dev/MedICS-Extension-Base/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
