package blocktext

const (
	// DocumentStart discards everything read before it.
	DocumentStart = "---"

	// DocumentEnd terminates reading; remaining input is ignored.
	DocumentEnd = "..."

	// LiteralToken introduces a literal block scalar keeping its final newline.
	LiteralToken = "|"

	// LiteralStripToken introduces a literal block scalar with the final
	// newline stripped.
	LiteralStripToken = "|-"

	// FoldedToken introduces a folded block scalar keeping its final newline.
	FoldedToken = ">"

	// FoldedStripToken introduces a folded block scalar with the final
	// newline stripped.
	FoldedStripToken = ">-"

	// SequenceEntryToken is a sequence marker on its own logical line.
	SequenceEntryToken = "-"
)

const (
	commentByte       = '#'
	sequenceEntryByte = '-'
	mappingKeyByte    = ':'
	doubleQuoteByte   = '"'
	singleQuoteByte   = '\''
	escapeByte        = '\\'
	tabByte           = '\t'
	spaceByte         = ' '
)

// Input bytes must be a tab or fall in this printable ASCII range.
const (
	minPrintableByte = 32
	maxPrintableByte = 125
)

// keySpecialBytes forces double-quoting of a mapping key on emission.
const keySpecialBytes = "\":{}[],&*#?|-<>=!%@"

// minIndent is the smallest accepted space indentation per nesting level.
const minIndent = 2

// seqChildIndent is the fixed nesting added under a sequence marker, the
// width of "- ".
const seqChildIndent = 2
