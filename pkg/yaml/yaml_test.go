package yaml_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/yamlkit/pkg/yaml"
)

func TestScenarioSimpleMapping(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "key: value\n"))
	require.Equal(t, yaml.Mapping, root.Kind())
	assert.Equal(t, "value", root.Key("key").Value())

	out, err := yaml.Serialize(&root, yaml.DefaultSerializeConfig())
	require.NoError(t, err)
	assert.Equal(t, "key: value\n", string(out))
}

func TestScenarioNestedMapping(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "a:\n  b: 1\n  c: 2\n"))
	inner := root.Key("a")
	require.Equal(t, yaml.Mapping, inner.Kind())
	assert.Equal(t, "1", inner.Key("b").Value())
	assert.Equal(t, "2", inner.Key("c").Value())
}

func TestScenarioSequenceOfMappings(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "- x: 1\n- x: 2\n"))
	require.Equal(t, yaml.Sequence, root.Kind())
	require.Equal(t, 2, root.Size())
	assert.Equal(t, "1", root.Index(0).Key("x").Value())
	assert.Equal(t, "2", root.Index(1).Key("x").Value())
}

func TestScenarioLiteralBlockScalar(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "text: |\n  line1\n  line2\n"))
	assert.Equal(t, "line1\nline2\n", root.Key("text").Value())
}

func TestScenarioFoldedStripScalar(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "text: >-\n  a\n  b\n"))
	assert.Equal(t, "a b", root.Key("text").Value())
}

func TestScenarioQuotedKey(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "\"a:b\": v\n"))
	require.Equal(t, yaml.Mapping, root.Kind())
	assert.Equal(t, "v", root.Key("a:b").Value())

	out, err := yaml.Serialize(&root, yaml.DefaultSerializeConfig())
	require.NoError(t, err)
	assert.Equal(t, "\"a:b\": v\n", string(out))
}

func TestScenarioTabIndentation(t *testing.T) {
	var root yaml.Node
	err := yaml.ParseString(&root, "a:\n\tb: 1\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, yaml.ErrTabInOffset)

	var perr *yaml.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, yaml.None, root.Kind())
}

func TestParseErrorMessageCarriesPosition(t *testing.T) {
	var root yaml.Node
	err := yaml.ParseString(&root, "ok: 1\n\tbad: 2\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseReader(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseReader(&root, strings.NewReader("a: 1\n")))
	assert.Equal(t, "1", root.Key("a").Value())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\nb:\n  - x\n"), 0o644))

	var root yaml.Node
	require.NoError(t, yaml.ParseFile(&root, path))
	assert.Equal(t, "1", root.Key("a").Value())
	assert.Equal(t, "x", root.Key("b").Index(0).Value())
}

func TestParseFileMissing(t *testing.T) {
	var root yaml.Node
	err := yaml.ParseFile(&root, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, yaml.ErrCannotOpenFile)
}

func TestSerializeFile(t *testing.T) {
	var root yaml.Node
	root.Key("a").SetValue("1")
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, yaml.SerializeFile(&root, yaml.DefaultSerializeConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}

func TestSerializeRejectsSmallIndent(t *testing.T) {
	var root yaml.Node
	root.SetValue("x")
	_, err := yaml.Serialize(&root, yaml.SerializeConfig{SpaceIndentation: 1})
	assert.ErrorIs(t, err, yaml.ErrIndentationTooSmall)
}

func TestParseErrorTable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"invalid character", "a: \x01\n", yaml.ErrInvalidCharacter},
		{"tab in offset", "a:\n\tb: 1\n", yaml.ErrTabInOffset},
		{"missing key", ": v\n", yaml.ErrMissingKey},
		{"incorrect key", "\"a\" \"b\": v\n", yaml.ErrIncorrectKey},
		{"incorrect value", "a: \"open\n", yaml.ErrIncorrectValue},
		{"inline block sequence", "a: - x\n", yaml.ErrBlockSequenceNotAllowed},
		{"incorrect offset", "a: b\n   c: d\n", yaml.ErrIncorrectOffset},
		{"different entry", "- a\nb: c\n", yaml.ErrDifferentEntryNotAllowed},
		{"open block scalar", "a: |\n", yaml.ErrUnexpectedDocumentEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var root yaml.Node
			err := yaml.ParseString(&root, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, yaml.None, root.Kind())
		})
	}
}

func TestDocumentMarkers(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "preamble junk\n---\na: 1\n...\nb: 2\n"))
	require.Equal(t, yaml.Mapping, root.Kind())
	require.Equal(t, 1, root.Size())
	assert.Equal(t, "1", root.Key("a").Value())
}

func TestSingleQuotedValueKeepsQuotes(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.ParseString(&root, "a: 'v'\n"))
	assert.Equal(t, "'v'", root.Key("a").Value())
}
