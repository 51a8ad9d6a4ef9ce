package blocktext

import (
	"github.com/joshuapare/yamlkit/pkg/node"
)

// buildTree runs phase C: the post-processed line list is consumed left to
// right by a recursive descent keyed on each line's kind. The root's kind
// follows the first line; empty input leaves the root as None.
func buildTree(root *node.Node, lines []*line) error {
	root.Clear()
	if len(lines) == 0 {
		return nil
	}
	b := &builder{lines: lines}
	if err := b.dispatch(root); err != nil {
		return err
	}
	if b.pos != len(b.lines) {
		ln := b.lines[b.pos]
		return posErr(ErrUnexpectedDocumentEnd, ln.no, ln.offset+1)
	}
	return nil
}

type builder struct {
	lines []*line
	pos   int
}

func (b *builder) dispatch(n *node.Node) error {
	ln := b.lines[b.pos]
	switch ln.kind {
	case kindScalar:
		n.SetValue(ln.data)
		b.pos++
		return nil
	case kindSequence:
		return b.buildSequence(n)
	case kindMapping:
		return b.buildMapping(n)
	default:
		return posErr(ErrSequenceError, ln.no, ln.offset+1)
	}
}

// buildSequence consumes one run of sequence markers at a single offset,
// recursing into each entry's content. A following line at the same offset
// must be another sequence marker; a deeper one is an offset error.
func (b *builder) buildSequence(n *node.Node) error {
	start := b.lines[b.pos]
	for {
		marker := b.lines[b.pos]
		b.pos++
		if b.pos >= len(b.lines) {
			return posErr(ErrUnexpectedDocumentEnd, marker.no, marker.offset+1)
		}
		if err := b.dispatch(n.PushBack()); err != nil {
			return err
		}
		if b.pos >= len(b.lines) {
			return nil
		}
		next := b.lines[b.pos]
		if next.offset < start.offset {
			return nil
		}
		if next.offset > start.offset {
			return posErr(ErrIncorrectOffset, next.no, next.offset+1)
		}
		if next.kind != kindSequence {
			return posErr(ErrDifferentEntryNotAllowed, next.no, next.offset+1)
		}
	}
}

// buildMapping consumes one run of mapping entries at a single offset. The
// same peek discipline as buildSequence applies between entries.
func (b *builder) buildMapping(n *node.Node) error {
	start := b.lines[b.pos]
	for {
		entry := b.lines[b.pos]
		b.pos++
		if b.pos >= len(b.lines) {
			return posErr(ErrUnexpectedDocumentEnd, entry.no, entry.offset+1)
		}
		if err := b.dispatch(n.Key(entry.data)); err != nil {
			return err
		}
		if b.pos >= len(b.lines) {
			return nil
		}
		next := b.lines[b.pos]
		if next.offset < start.offset {
			return nil
		}
		if next.offset > start.offset {
			return posErr(ErrIncorrectOffset, next.no, next.offset+1)
		}
		if next.kind != kindMapping {
			return posErr(ErrDifferentEntryNotAllowed, next.no, next.offset+1)
		}
	}
}
