// Package cli provides the command-line interface for docstr tooling.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docstr",
		Short: "Google-style docstring tools",
	}

	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}
