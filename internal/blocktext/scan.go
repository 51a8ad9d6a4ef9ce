package blocktext

import "strings"

// findNotCited returns the index of the first occurrence of tok that lies
// outside every quoted span of s, or -1. quotePairs is the number of
// complete double-quoted spans scanned before the match (or before the end
// of s when there is no match).
//
// A double-quoted span runs from an unescaped '"' to the next unescaped
// '"'. Single quotes delimit spans symmetrically but are not escapable.
func findNotCited(s string, tok byte) (pos int, quotePairs int) {
	inDouble := false
	inSingle := false
	pairs := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == doubleQuoteByte && !inSingle && !isEscaped(s, i):
			if inDouble {
				pairs++
			}
			inDouble = !inDouble
		case c == singleQuoteByte && !inDouble:
			inSingle = !inSingle
		case c == tok && !inDouble && !inSingle:
			return i, pairs
		}
	}
	return -1, pairs
}

// isEscaped reports whether the byte at i is preceded by a backslash.
func isEscaped(s string, i int) bool {
	return i > 0 && s[i-1] == escapeByte
}

// stripComment truncates s at the first '#' outside every quoted span.
func stripComment(s string) string {
	if pos, _ := findNotCited(s, commentByte); pos >= 0 {
		return s[:pos]
	}
	return s
}

// removeEscapes rewrites every backslash escape `\x` to `x`. No named
// escapes (\n, \t, \xNN) are decoded; a trailing lone backslash is kept.
func removeEscapes(s string) string {
	if !strings.ContainsRune(s, rune(escapeByte)) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == escapeByte && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// stripDoubleQuotes removes the enclosing quotes from a value that starts
// with '"'. It fails unless the first unescaped closing quote sits at the
// very end of the value.
func stripDoubleQuotes(s string) (string, bool) {
	end := -1
	for i := 1; i < len(s); i++ {
		if s[i] == doubleQuoteByte && !isEscaped(s, i) {
			end = i
			break
		}
	}
	if end < 0 || end != len(s)-1 {
		return "", false
	}
	return s[1:end], true
}

// isSequenceStart reports whether s opens a sequence entry: a '-' followed
// by end-of-line or a space.
func isSequenceStart(s string) bool {
	if len(s) == 0 || s[0] != sequenceEntryByte {
		return false
	}
	return len(s) == 1 || s[1] == spaceByte
}
