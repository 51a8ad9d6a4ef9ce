/*
Package yaml reads and writes block-style YAML subset documents.

# Quick Start

Parse a document and read values:

	var root yaml.Node
	err := yaml.ParseString(&root, "name: yamlkit\nport: 8080\n")
	if err != nil {
	    log.Fatal(err)
	}
	name := root.Key("name").AsString()
	port := root.Key("port").AsInt(80)

Serialize a tree back to text:

	out, err := yaml.Serialize(&root, yaml.DefaultSerializeConfig())

# Supported Input

Block sequences ("- value" per line), block mappings ("key: value" per
line), plain and double-quoted scalars, literal (|) and folded (>)
multi-line scalars with optional strip chomping (- suffix), "---" and
"..." document markers, and comments from an unquoted # to end of line.
Indentation is spaces only; tabs are rejected inside the indentation
region. Input bytes are 7-bit printable ASCII plus tab; UTF-16 and
BOM-prefixed buffers are transcoded before validation.

Out of scope: anchors and aliases, tags, flow style, directives,
multi-document streams (reading stops at the first "..." marker; a later
"---" line is read as document content), and any
Unicode content beyond the ASCII subset. Single-quoted scalars are
accepted for quote scanning but their quotes are not stripped.

# Errors

Syntax failures wrap a sentinel error (ErrTabInOffset, ErrMissingKey, ...)
in a ParseError carrying the 1-based line and column, so callers can branch
with errors.Is and still print a positioned message. ErrCannotOpenFile and
ErrIndentationTooSmall are wrapped without a position. A failed parse
resets the target root to None.

# Concurrency

Everything is single-threaded and synchronous. A Node tree must not be
mutated concurrently; independent trees are fully independent.
*/
package yaml
