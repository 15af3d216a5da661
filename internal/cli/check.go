package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docstr-labs/docstr/internal/checker"
)

func newCheckCommand() *cobra.Command {
	var (
		configPath        string
		requireParamTypes bool
		checkReferences   bool
		verbose           bool
	)

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check that doc comments in the given paths parse cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := checker.LoadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags and arguments override the config file.
			if len(args) > 0 {
				cfg.Paths = args
			}
			if cmd.Flags().Changed("require-param-types") {
				cfg.RequireParamTypes = requireParamTypes
			}
			if cmd.Flags().Changed("check-references") {
				cfg.CheckReferences = checkReferences
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}

			findings, err := checker.New(cfg).Run(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, f := range findings {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			if len(findings) > 0 {
				return fmt.Errorf("found %d docstring problem(s)", len(findings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", ".docstr.yml", "Path to .docstr.yml config file")
	cmd.Flags().BoolVar(&requireParamTypes, "require-param-types", false, "Require a type annotation for every documented parameter")
	cmd.Flags().BoolVar(&checkReferences, "check-references", true, "Check References sections for format errors")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print every checked symbol")

	return cmd
}
