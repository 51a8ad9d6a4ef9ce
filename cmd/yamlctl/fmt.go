package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/yamlkit/pkg/yaml"
	"github.com/spf13/cobra"
)

var (
	fmtIndent     int
	fmtMaxScalar  int
	fmtSeqNewline bool
	fmtMapNewline bool
	fmtWrite      bool
)

func init() {
	cmd := newFmtCmd()
	cmd.Flags().IntVar(&fmtIndent, "indent", 3, "Spaces per nesting level (minimum 2)")
	cmd.Flags().IntVar(&fmtMaxScalar, "max-scalar", 64, "Fold plain scalars longer than this (0 disables)")
	cmd.Flags().BoolVar(&fmtSeqNewline, "seq-map-newline", false, "Start mappings inside sequences on their own line")
	cmd.Flags().BoolVar(&fmtMapNewline, "map-scalar-newline", false, "Start scalar mapping values on their own line")
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file instead of printing to stdout")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat a document to canonical block style",
		Long: `The fmt command parses a document and serializes it back, normalizing
indentation, quoting and multi-line scalar styles.

Example:
  yamlctl fmt config.yaml
  yamlctl fmt --indent 2 --max-scalar 0 -w config.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0])
		},
	}
}

func runFmt(path string) error {
	var root yaml.Node
	if err := yaml.ParseFile(&root, path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	cfg := yaml.SerializeConfig{
		SpaceIndentation:   fmtIndent,
		ScalarMaxLength:    fmtMaxScalar,
		SequenceMapNewline: fmtSeqNewline,
		MapScalarNewline:   fmtMapNewline,
	}
	out, err := yaml.Serialize(&root, cfg)
	if err != nil {
		return err
	}
	if fmtWrite {
		printVerbose("Rewriting: %s\n", path)
		return os.WriteFile(path, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}
