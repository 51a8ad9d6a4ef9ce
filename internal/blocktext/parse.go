package blocktext

import (
	"bytes"

	"github.com/joshuapare/yamlkit/pkg/node"
)

// Parse populates root from a document buffer. On failure the root is reset
// to None and all reader state is released before the error is returned.
func Parse(root *node.Node, data []byte) error {
	decoded, err := decodeInput(data)
	if err != nil {
		root.Clear()
		return err
	}
	lines, err := readLines(bytes.NewReader(decoded))
	if err != nil {
		root.Clear()
		return err
	}
	lines, err = postProcess(lines)
	if err != nil {
		root.Clear()
		return err
	}
	if err := buildTree(root, lines); err != nil {
		root.Clear()
		return err
	}
	return nil
}
