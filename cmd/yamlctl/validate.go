package main

import (
	"fmt"

	"github.com/joshuapare/yamlkit/pkg/yaml"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a document parses",
		Long: `The validate command parses a document and reports the first error with
its line and column.

Example:
  yamlctl validate config.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	printVerbose("Parsing: %s\n", path)

	var root yaml.Node
	if err := yaml.ParseFile(&root, path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	printInfo("%s: valid (%s root, %d top-level entries)\n", path, root.Kind(), root.Size())
	return nil
}
