package blocktext

import (
	"slices"
	"strings"
)

// postProcess runs phase B: every line is classified as a sequence entry,
// mapping entry or scalar, compound lines are split so each logical line
// carries exactly one construct, and multi-line block scalars are merged
// into a single scalar line. The last remaining line must be a scalar.
func postProcess(lines []*line) ([]*line, error) {
	p := &postProcessor{lines: lines}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.lines, nil
}

type postProcessor struct {
	lines []*line
}

func (p *postProcessor) run() error {
	for i := 0; i < len(p.lines); {
		ln := p.lines[i]
		if ln.kind == kindScalar || p.isBlockContinuation(i) {
			i = p.processScalar(i)
			continue
		}
		if p.processSequence(i) {
			i++
			continue
		}
		ok, err := p.processMapping(i)
		if err != nil {
			return err
		}
		if ok {
			i++
			continue
		}
		i = p.processScalar(i)
	}

	if n := len(p.lines); n > 0 && p.lines[n-1].kind != kindScalar {
		last := p.lines[n-1]
		return posErr(ErrUnexpectedDocumentEnd, last.no, last.offset+1)
	}
	return nil
}

// isBlockContinuation reports whether line i belongs to the body of an open
// block scalar. The first body line indents deeper than the token line;
// later body lines sit at or beyond the first one. Body lines are never
// dissected by the sequence or mapping rules, whatever they contain.
func (p *postProcessor) isBlockContinuation(i int) bool {
	if i == 0 {
		return false
	}
	prev := p.lines[i-1]
	if !prev.hasBlockFlag() {
		return false
	}
	if prev.kind == kindScalar {
		return p.lines[i].offset >= prev.offset
	}
	return p.lines[i].offset > prev.offset
}

// processSequence classifies a sequence entry. A line holding more than the
// bare marker is split: the marker keeps the original offset and the
// remainder becomes a fresh line right after it.
func (p *postProcessor) processSequence(i int) bool {
	ln := p.lines[i]
	if !isSequenceStart(ln.data) {
		return false
	}
	ln.kind = kindSequence
	if len(ln.data) == 1 {
		return true
	}
	rest := strings.TrimLeft(ln.data[1:], " \t")
	split := len(ln.data) - len(rest)
	p.insert(i+1, &line{no: ln.no, offset: ln.offset + split, data: rest})
	ln.data = SequenceEntryToken
	return true
}

// processMapping classifies a mapping entry: the payload before the first
// not-cited ':' becomes the key, and the value region either moves to a
// fresh line, sets the block-scalar flags, or gets an empty placeholder.
func (p *postProcessor) processMapping(i int) (bool, error) {
	ln := p.lines[i]
	data := ln.data
	tokenPos, quotePairs := findNotCited(data, mappingKeyByte)
	if tokenPos < 0 {
		return false, nil
	}
	if quotePairs > 1 {
		return false, posErr(ErrIncorrectKey, ln.no, ln.offset+1)
	}

	key := strings.TrimRight(data[:tokenPos], " \t")
	if quotePairs == 1 {
		if len(key) < 2 || key[0] != doubleQuoteByte || key[len(key)-1] != doubleQuoteByte {
			return false, posErr(ErrIncorrectKey, ln.no, ln.offset+1)
		}
		key = key[1 : len(key)-1]
	}
	key = removeEscapes(key)
	if key == "" {
		return false, posErr(ErrMissingKey, ln.no, ln.offset+1)
	}
	ln.kind = kindMapping
	ln.data = key

	valueStart := -1
	for j := tokenPos + 1; j < len(data); j++ {
		if data[j] != spaceByte && data[j] != tabByte {
			valueStart = j
			break
		}
	}
	if valueStart < 0 {
		// Empty value: the next line must indent strictly deeper to serve
		// as the value; otherwise an empty scalar stands in.
		if i+1 >= len(p.lines) || p.lines[i+1].offset <= ln.offset {
			p.insert(i+1, &line{
				no:     ln.no,
				offset: ln.offset + tokenPos + 1,
				kind:   kindScalar,
			})
		}
		return true, nil
	}

	value := data[valueStart:]
	switch value {
	case LiteralToken:
		ln.flags |= flagLiteral | flagKeepNewline
	case FoldedToken:
		ln.flags |= flagFolded | flagKeepNewline
	case LiteralStripToken:
		ln.flags |= flagLiteral
	case FoldedStripToken:
		ln.flags |= flagFolded
	default:
		if i+1 < len(p.lines) && p.lines[i+1].offset > ln.offset {
			next := p.lines[i+1]
			return false, posErr(ErrIncorrectOffset, next.no, next.offset+1)
		}
		if isSequenceStart(value) {
			return false, posErr(ErrBlockSequenceNotAllowed, ln.no, ln.offset+valueStart+1)
		}
		nl := &line{no: ln.no, offset: ln.offset + valueStart, data: value}
		if value[0] == doubleQuoteByte {
			stripped, ok := stripDoubleQuotes(value)
			if !ok {
				return false, posErr(ErrIncorrectValue, ln.no, ln.offset+valueStart+1)
			}
			nl.data = stripped
			nl.kind = kindScalar
		}
		p.insert(i+1, nl)
	}
	return true, nil
}

// processScalar classifies line i as a scalar, copying the scalar flags
// from its predecessor. A literal or folded scalar greedily merges every
// following line whose offset is at or beyond its own, padding the offset
// delta with spaces; merged source lines are removed before they are ever
// classified. Returns the index of the next line to classify.
func (p *postProcessor) processScalar(i int) int {
	ln := p.lines[i]
	ln.kind = kindScalar
	if i > 0 {
		ln.flags = p.lines[i-1].flags
	}
	if !ln.hasBlockFlag() {
		return i + 1
	}

	sep := " "
	if ln.flags&flagLiteral != 0 {
		sep = "\n"
	}
	var b strings.Builder
	b.WriteString(ln.data)
	j := i + 1
	for j < len(p.lines) && p.lines[j].offset >= ln.offset {
		b.WriteString(sep)
		for pad := p.lines[j].offset - ln.offset; pad > 0; pad-- {
			b.WriteByte(spaceByte)
		}
		b.WriteString(p.lines[j].data)
		j++
	}
	p.lines = append(p.lines[:i+1], p.lines[j:]...)
	if ln.flags&flagKeepNewline != 0 {
		b.WriteByte('\n')
	}
	ln.data = b.String()
	return i + 1
}

func (p *postProcessor) insert(i int, ln *line) {
	p.lines = slices.Insert(p.lines, i, ln)
}
