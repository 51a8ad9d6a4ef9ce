package blocktext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/yamlkit/pkg/node"
)

// EmitConfig controls block-style serialization.
type EmitConfig struct {
	// Indent is the number of spaces per nesting level, at least 2.
	Indent int
	// ScalarMaxLength folds plain scalars longer than this onto multiple
	// lines when positive.
	ScalarMaxLength int
	// SequenceMapNewline starts a mapping that appears as a sequence entry
	// on the line after the "- " marker.
	SequenceMapNewline bool
	// MapScalarNewline starts a scalar mapping value on the line after the
	// key.
	MapScalarNewline bool
}

// Emit serializes the tree below root into block-style text.
func Emit(root *node.Node, cfg EmitConfig) ([]byte, error) {
	if cfg.Indent < minIndent {
		return nil, fmt.Errorf("%w: got %d", ErrIndentationTooSmall, cfg.Indent)
	}
	e := &emitter{cfg: cfg}
	e.emitNode(root, 0, false)
	return e.buf.Bytes(), nil
}

type emitter struct {
	buf bytes.Buffer
	cfg EmitConfig
}

func (e *emitter) indent(level int) {
	for ; level > 0; level-- {
		e.buf.WriteByte(spaceByte)
	}
}

func (e *emitter) emitNode(n *node.Node, level int, useLevel bool) {
	switch n.Kind() {
	case node.Sequence:
		e.emitSequence(n, level)
	case node.Mapping:
		e.emitMapping(n, level, useLevel)
	case node.Scalar:
		e.emitScalar(n.Value(), level, useLevel)
	}
}

func (e *emitter) emitSequence(n *node.Node, level int) {
	for child := range n.Items() {
		if child.IsNone() {
			continue
		}
		e.indent(level)
		e.buf.WriteString(SequenceEntryToken)
		e.buf.WriteByte(spaceByte)
		if child.IsSequence() || (child.IsMapping() && e.cfg.SequenceMapNewline) {
			e.buf.WriteByte('\n')
			e.emitNode(child, level+seqChildIndent, true)
		} else {
			e.emitNode(child, level+seqChildIndent, false)
		}
	}
}

func (e *emitter) emitMapping(n *node.Node, level int, useLevel bool) {
	first := true
	for key, child := range n.All() {
		if child.IsNone() {
			continue
		}
		if !first || useLevel {
			e.indent(level)
		}
		first = false
		e.emitKey(key)
		e.buf.WriteByte(mappingKeyByte)
		e.buf.WriteByte(spaceByte)
		if !child.IsScalar() || e.cfg.MapScalarNewline {
			e.buf.WriteByte('\n')
			e.emitNode(child, level+e.cfg.Indent, true)
		} else {
			e.emitNode(child, level+e.cfg.Indent, false)
		}
		useLevel = true
	}
}

// emitKey writes a mapping key, backslash-escaping '\' and '"' and
// double-quoting the key when it contains a structural character.
func (e *emitter) emitKey(key string) {
	escaped := strings.ReplaceAll(key, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	if strings.ContainsAny(key, keySpecialBytes) {
		e.buf.WriteByte(doubleQuoteByte)
		e.buf.WriteString(escaped)
		e.buf.WriteByte(doubleQuoteByte)
		return
	}
	e.buf.WriteString(escaped)
}

// emitScalar picks the plain, literal or folded style for a scalar value. A
// value with interior newlines (or a kept trailing newline) becomes a
// literal block; a long single-line value becomes a folded block when the
// folding rule can split it; everything else is emitted plain.
func (e *emitter) emitScalar(value string, level int, useLevel bool) {
	if value == "" {
		e.buf.WriteByte('\n')
		return
	}
	parts := strings.Split(value, "\n")
	endNewline := parts[len(parts)-1] == ""
	if endNewline {
		parts = parts[:len(parts)-1]
	}

	style := byte(0)
	switch {
	case len(parts) >= 2:
		style = '|'
	case e.cfg.ScalarMaxLength > 0 && len(parts[0]) > e.cfg.ScalarMaxLength:
		if folded := foldLine(parts[0], e.cfg.ScalarMaxLength); len(folded) >= 2 {
			style = '>'
			parts = folded
		}
	}
	if style == 0 && endNewline {
		style = '|'
	}

	if style == 0 {
		if useLevel {
			e.indent(level)
		}
		e.buf.WriteString(parts[0])
		e.buf.WriteByte('\n')
		return
	}

	if useLevel {
		e.indent(level)
	}
	e.buf.WriteByte(style)
	if !endNewline {
		e.buf.WriteByte('-')
	}
	e.buf.WriteByte('\n')
	for _, part := range parts {
		e.indent(level)
		e.buf.WriteString(part)
		e.buf.WriteByte('\n')
	}
}

// foldLine splits s for folded emission: from each break position it jumps
// max bytes forward, breaks at the next space at or beyond that point and
// drops the space. The tail past the last break is the final piece, so the
// result has two or more pieces only when a splittable space was found.
func foldLine(s string, max int) []string {
	var parts []string
	start := 0
	for {
		target := start + max
		if target >= len(s) {
			break
		}
		sp := strings.IndexByte(s[target:], spaceByte)
		if sp < 0 {
			break
		}
		sp += target
		parts = append(parts, s[start:sp])
		start = sp + 1
	}
	return append(parts, s[start:])
}
