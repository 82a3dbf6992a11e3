// Package block splits a markdown document into blank-line separated blocks
// and classifies each one as a heading, code fence, quote, list or
// paragraph.
package block

import "strings"

// Type classifies a block.
type Type uint8

// Block types. Paragraph is the fallback.
const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

// String returns a human-readable name for the block type.
func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// Block is one classified unit of a document.
type Block struct {
	// Text is the block source, trimmed of surrounding whitespace.
	Text string

	// Type is the classification of Text.
	Type Type
}

// Lines returns the block text split on newlines.
func (b Block) Lines() []string {
	return strings.Split(b.Text, "\n")
}

// Segment splits a document into blocks separated by blank lines.
// Each block is trimmed of leading and trailing whitespace and empty blocks
// are dropped. CRLF line endings are treated as LF.
func Segment(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")

	var blocks []string
	for _, chunk := range strings.Split(doc, "\n\n") {
		trimmed := strings.TrimSpace(chunk)
		if trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}

// Parse segments a document and classifies every block, in document order.
func Parse(doc string) []Block {
	texts := Segment(doc)
	blocks := make([]Block, 0, len(texts))
	for _, text := range texts {
		blocks = append(blocks, Block{Text: text, Type: Classify(text)})
	}
	return blocks
}
