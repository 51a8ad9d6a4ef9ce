package blocktext

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single raw input line.
const maxLineBytes = 1 << 20

// lineKind classifies a post-processed logical line.
type lineKind uint8

const (
	kindUnknown lineKind = iota
	kindSequence
	kindMapping
	kindScalar
)

// Scalar flags set by the block tokens |, >, |- and >-. A scalar
// continuation line copies all three from its predecessor.
type lineFlags uint8

const (
	flagLiteral lineFlags = 1 << iota
	flagFolded
	flagKeepNewline
)

// line is one trimmed, offset-annotated logical line of the document. The
// list is built during phase A, reshaped during phase B and consumed by the
// tree builder. It never outlives a parse.
type line struct {
	no     int // 1-based line number in the raw input
	offset int // count of leading spaces
	data   string
	kind   lineKind
	flags  lineFlags
}

func (ln *line) hasBlockFlag() bool {
	return ln.flags&(flagLiteral|flagFolded) != 0
}

// readLines runs phase A: it reads the stream line by line, strips comments
// and carriage returns, honors the document markers, drops blank lines,
// validates the character set and records each remaining line's offset and
// trimmed payload.
func readLines(r io.Reader) ([]*line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []*line
	no := 0
	docStart := false
	for scanner.Scan() {
		no++
		raw := strings.TrimSuffix(scanner.Text(), "\r")
		content := stripComment(raw)

		// Document markers. The first "---" discards everything read so
		// far; "..." stops reading for good.
		if !docStart && content == DocumentStart {
			lines = lines[:0]
			docStart = true
			continue
		}
		if content == DocumentEnd {
			break
		}

		payload := strings.Trim(content, " \t")
		if payload == "" {
			continue
		}

		for i := 0; i < len(content); i++ {
			if c := content[i]; c != tabByte && (c < minPrintableByte || c > maxPrintableByte) {
				return nil, posErr(ErrInvalidCharacter, no, i+1)
			}
		}

		// Offset is the leading-space count; a tab inside the indentation
		// region is rejected.
		start := strings.IndexFunc(content, func(r rune) bool {
			return r != ' ' && r != '\t'
		})
		if tab := strings.IndexByte(content, tabByte); tab >= 0 && tab < start {
			return nil, posErr(ErrTabInOffset, no, tab+1)
		}

		lines = append(lines, &line{no: no, offset: start, data: payload})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
