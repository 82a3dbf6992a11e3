package markdown

import "errors"

var (
	// ErrMissingTitle is returned when a document does not start with a level-1 heading.
	ErrMissingTitle = errors.New("document must start with a level-1 heading")

	// ErrUnknownBlock is returned for a block type without a compiler.
	ErrUnknownBlock = errors.New("unknown block type")
)
