// Package main provides the CLI for docstr tooling.
package main

import (
	"os"

	"github.com/docstr-labs/docstr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
