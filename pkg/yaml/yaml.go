package yaml

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/yamlkit/internal/blocktext"
	"github.com/joshuapare/yamlkit/internal/mmfile"
	"github.com/joshuapare/yamlkit/pkg/node"
)

// Node is the document tree node. See the node package for operations.
type Node = node.Node

// Kind identifies the shape of a Node.
type Kind = node.Kind

// Node kinds.
const (
	None     = node.None
	Scalar   = node.Scalar
	Sequence = node.Sequence
	Mapping  = node.Mapping
)

// Parse populates root from a document buffer. On failure root is reset to
// None and the returned error wraps one of the package sentinels.
func Parse(root *Node, data []byte) error {
	return blocktext.Parse(root, data)
}

// ParseString populates root from a document string.
func ParseString(root *Node, s string) error {
	return blocktext.Parse(root, []byte(s))
}

// ParseReader populates root from a readable byte stream. The stream is
// consumed fully before parsing so encoding detection can see the whole
// buffer.
func ParseReader(root *Node, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		root.Clear()
		return err
	}
	return blocktext.Parse(root, data)
}

// ParseFile populates root from the file at path. The file is memory-mapped
// where the platform allows it.
func ParseFile(root *Node, path string) error {
	f, err := mmfile.Open(path)
	if err != nil {
		root.Clear()
		return fmt.Errorf("%w: %s: %v", ErrCannotOpenFile, path, err)
	}
	defer f.Close()
	return blocktext.Parse(root, f.Bytes())
}

// Serialize produces block-style text for the tree below root.
func Serialize(root *Node, cfg SerializeConfig) ([]byte, error) {
	return blocktext.Emit(root, blocktext.EmitConfig{
		Indent:             cfg.SpaceIndentation,
		ScalarMaxLength:    cfg.ScalarMaxLength,
		SequenceMapNewline: cfg.SequenceMapNewline,
		MapScalarNewline:   cfg.MapScalarNewline,
	})
}

// SerializeString produces block-style text for the tree below root.
func SerializeString(root *Node, cfg SerializeConfig) (string, error) {
	out, err := Serialize(root, cfg)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SerializeFile writes the serialized tree to the file at path.
func SerializeFile(root *Node, cfg SerializeConfig, path string) error {
	out, err := Serialize(root, cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
