package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/yamlkit/pkg/yaml"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted path",
		Long: `The get command looks up a dot-separated path in a document. Numeric
segments index sequences; everything else keys mappings. Scalars print
their text; composite values print serialized.

Example:
  yamlctl get config.yaml server.port
  yamlctl get config.yaml servers.0.host`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(path, query string) error {
	var root yaml.Node
	if err := yaml.ParseFile(&root, path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	n := lookupPath(&root, query)
	switch n.Kind() {
	case yaml.None:
		return fmt.Errorf("%s: no value at %q", path, query)
	case yaml.Scalar:
		fmt.Println(n.Value())
		return nil
	default:
		out, err := yaml.Serialize(n, yaml.DefaultSerializeConfig())
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}
}

// lookupPath walks a dot-separated path without mutating the tree. A
// segment that misses returns a detached None node.
func lookupPath(n *yaml.Node, query string) *yaml.Node {
	for _, seg := range strings.Split(query, ".") {
		if seg == "" {
			continue
		}
		switch {
		case n.IsSequence():
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return &yaml.Node{}
			}
			n = n.Index(idx)
		case n.IsMapping():
			if !n.HasKey(seg) {
				return &yaml.Node{}
			}
			n = n.Key(seg)
		default:
			return &yaml.Node{}
		}
	}
	return n
}
