// Package inline tokenizes a run of markdown text into typed spans: plain
// text, bold, italic, inline code, links and images.
//
// Malformed markup (an unmatched delimiter, a bracket without a target) is
// never an error. It is left in place as plain text.
package inline

import (
	"errors"
	"fmt"

	"github.com/yaklabco/mdsite/pkg/htmlnode"
)

// Kind classifies a span.
type Kind uint8

// Span kinds, in no particular order.
const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// Span is a typed run of inline text.
type Span struct {
	// Text is the span content with its markup removed.
	// For images it is the alt text.
	Text string

	// Kind selects how the span is rendered.
	Kind Kind

	// URL is the link target or image source. Empty for other kinds.
	URL string
}

// PlainSpan returns a Plain span holding text.
func PlainSpan(text string) Span {
	return Span{Text: text, Kind: Plain}
}

// rendering describes how a kind maps onto a leaf node.
type rendering struct {
	tag string

	// urlAttr receives Span.URL.
	urlAttr string

	// textAttr, when set, receives Span.Text and the leaf value is empty.
	textAttr string
}

// renderings is the single kind -> tag/attribute table.
//
//nolint:gochecknoglobals // Read-only lookup table.
var renderings = map[Kind]rendering{
	Plain:  {},
	Bold:   {tag: "b"},
	Italic: {tag: "i"},
	Code:   {tag: "code"},
	Link:   {tag: htmlnode.TagLink, urlAttr: "href"},
	Image:  {tag: htmlnode.TagImage, urlAttr: "src", textAttr: "alt"},
}

// ErrUnknownKind is returned by ToNode for a kind outside the defined set.
var ErrUnknownKind = errors.New("unknown span kind")

// Tag returns the HTML tag a kind renders as. Plain renders untagged.
func (k Kind) Tag() string {
	return renderings[k].tag
}

// ToNode converts a span into a leaf node.
func ToNode(span Span) (*htmlnode.Leaf, error) {
	r, ok := renderings[span.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, span.Kind)
	}

	switch {
	case r.textAttr != "":
		return htmlnode.NewLeaf(r.tag, "", htmlnode.NewAttrs(r.urlAttr, span.URL, r.textAttr, span.Text)), nil
	case r.urlAttr != "":
		return htmlnode.NewLeaf(r.tag, span.Text, htmlnode.NewAttrs(r.urlAttr, span.URL)), nil
	default:
		return htmlnode.NewLeaf(r.tag, span.Text, nil), nil
	}
}

// ToNodes converts spans into leaf nodes, preserving order.
func ToNodes(spans []Span) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		node, err := ToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
