// Package blocktext implements the line-oriented block codec behind the
// public yaml package: a three-phase parser (line reading, line
// post-processing, tree building) and the matching block-style emitter.
//
// The accepted grammar is a block-style subset: block sequences, block
// mappings, plain and double-quoted scalars, literal (|) and folded (>)
// multi-line scalars with optional strip chomping, `---`/`...` document
// markers, and `#` comments. Input is 7-bit printable ASCII plus tab;
// UTF-16LE and BOM-prefixed buffers are transcoded before validation.
package blocktext
