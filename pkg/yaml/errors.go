package yaml

import "github.com/joshuapare/yamlkit/internal/blocktext"

// ParseError carries the position of a parse failure. Use errors.As to
// recover the line and column, and errors.Is against the sentinels below to
// branch on the failure kind.
type ParseError = blocktext.ParseError

// Parsing errors: the input is malformed.
var (
	ErrInvalidCharacter         = blocktext.ErrInvalidCharacter
	ErrTabInOffset              = blocktext.ErrTabInOffset
	ErrMissingKey               = blocktext.ErrMissingKey
	ErrIncorrectKey             = blocktext.ErrIncorrectKey
	ErrIncorrectValue           = blocktext.ErrIncorrectValue
	ErrBlockSequenceNotAllowed  = blocktext.ErrBlockSequenceNotAllowed
	ErrIncorrectOffset          = blocktext.ErrIncorrectOffset
	ErrDifferentEntryNotAllowed = blocktext.ErrDifferentEntryNotAllowed
)

// Operation errors: the configuration or environment is at fault.
var (
	ErrCannotOpenFile      = blocktext.ErrCannotOpenFile
	ErrIndentationTooSmall = blocktext.ErrIndentationTooSmall
)

// Internal errors: an invariant violation inside the parser.
var (
	ErrUnexpectedDocumentEnd = blocktext.ErrUnexpectedDocumentEnd
	ErrSequenceError         = blocktext.ErrSequenceError
)
