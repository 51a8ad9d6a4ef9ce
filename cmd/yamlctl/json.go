package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/yamlkit/pkg/yaml"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newJSONCmd())
}

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json <file>",
		Short: "Convert a document to JSON",
		Long: `The json command parses a document and prints it as indented JSON.
Scalars stay strings; sequences become arrays and mappings become objects.

Example:
  yamlctl json config.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJSON(args[0])
		},
	}
}

func runJSON(path string) error {
	var root yaml.Node
	if err := yaml.ParseFile(&root, path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(nodeToAny(&root))
}

// nodeToAny converts a tree into the shapes encoding/json understands.
func nodeToAny(n *yaml.Node) any {
	switch n.Kind() {
	case yaml.Scalar:
		return n.Value()
	case yaml.Sequence:
		items := make([]any, 0, n.Size())
		for child := range n.Items() {
			items = append(items, nodeToAny(child))
		}
		return items
	case yaml.Mapping:
		entries := make(map[string]any, n.Size())
		for key, child := range n.All() {
			entries[key] = nodeToAny(child)
		}
		return entries
	default:
		return nil
	}
}
