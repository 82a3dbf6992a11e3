// Package markdown compiles a markdown document into an htmlnode tree.
//
// A document is split into blocks (see package block), every block is
// compiled by the compiler for its type, and the results are collected
// under a single <div>. Inline markup inside blocks is resolved by package
// inline. Code blocks are emitted verbatim.
package markdown

import (
	"fmt"

	"github.com/yaklabco/mdsite/pkg/block"
	"github.com/yaklabco/mdsite/pkg/htmlnode"
)

// RootTag is the tag of the element that wraps a compiled document.
const RootTag = "div"

// ListMode selects how inline markup in list items is tokenized.
type ListMode string

const (
	// ListJoined wraps every item in a literal <li></li> shell, joins the
	// shells and tokenizes the result as one text. Markup may therefore
	// span item boundaries.
	ListJoined ListMode = "joined"

	// ListPerItem tokenizes each item on its own and emits <li> elements.
	ListPerItem ListMode = "per_item"
)

// IsValid returns true if the list mode is known.
func (m ListMode) IsValid() bool {
	switch m {
	case ListJoined, ListPerItem:
		return true
	default:
		return false
	}
}

// Options tunes compilation. The zero value matches ListJoined with code
// blocks kept verbatim.
type Options struct {
	// ListMode selects list item tokenization. Empty means ListJoined.
	ListMode ListMode

	// InfoStringClass moves the info string of a code fence into a
	// language-* class instead of leaving it in the code text.
	InfoStringClass bool

	// DetectCodeLanguage labels code blocks that have no info string with a
	// detected language class.
	DetectCodeLanguage bool
}

// Converter compiles documents with a fixed set of options.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	opts Options
}

// NewConverter creates a Converter.
func NewConverter(opts Options) *Converter {
	if opts.ListMode == "" {
		opts.ListMode = ListJoined
	}
	return &Converter{opts: opts}
}

// Options returns the options the converter was created with.
func (c *Converter) Options() Options {
	return c.opts
}

// ToTree compiles doc into a <div> holding one child per block.
func (c *Converter) ToTree(doc string) (*htmlnode.Parent, error) {
	blocks := block.Parse(doc)
	root := &htmlnode.Parent{Tag: RootTag, Children: make([]htmlnode.Node, 0, len(blocks))}

	for idx, blk := range blocks {
		node, err := c.compile(blk)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", idx+1, blk.Type, err)
		}
		root.Append(node)
	}

	return root, nil
}

// ToHTML compiles doc and serializes the tree.
func (c *Converter) ToHTML(doc string) (string, error) {
	root, err := c.ToTree(doc)
	if err != nil {
		return "", err
	}
	return root.HTML()
}

// ToTree compiles doc with default options.
func ToTree(doc string) (*htmlnode.Parent, error) {
	return NewConverter(Options{}).ToTree(doc)
}

// ToHTML compiles doc with default options and serializes it.
func ToHTML(doc string) (string, error) {
	return NewConverter(Options{}).ToHTML(doc)
}

// compile dispatches a block to the compiler for its type.
func (c *Converter) compile(blk block.Block) (*htmlnode.Parent, error) {
	switch blk.Type {
	case block.Heading:
		return compileHeading(blk.Text)
	case block.Code:
		return c.compileCode(blk.Text), nil
	case block.Quote:
		return compileQuote(blk.Text)
	case block.UnorderedList:
		return c.compileList(blk.Text, "ul", stripBullet)
	case block.OrderedList:
		return c.compileList(blk.Text, "ol", stripNumber)
	case block.Paragraph:
		return compileParagraph(blk.Text)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBlock, blk.Type)
	}
}
