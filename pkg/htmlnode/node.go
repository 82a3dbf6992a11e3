// Package htmlnode provides the minimal HTML tree that markdown documents
// compile into. A tree is made of Leaf nodes (a literal value, no children)
// and Parent nodes (ordered children, no value); HTML serializes it.
//
// Serialization is raw string substitution: tag names are not validated and
// values and attributes are not escaped.
package htmlnode

import (
	"fmt"
	"strings"
)

// Tags with a dedicated serialization form.
const (
	TagImage = "img"
	TagLink  = "a"
)

// Node is an element of the HTML tree. It is implemented only by *Leaf and
// *Parent.
type Node interface {
	// HTML serializes the node and its descendants.
	HTML() (string, error)

	writeHTML(builder *strings.Builder) error
}

// Leaf is a node holding a literal value.
type Leaf struct {
	// Tag is the element name. Empty means the value is emitted bare.
	Tag string

	// Value is the text content. Nil means absent; the empty string is valid.
	Value *string

	// Attrs is the attribute mapping. Nil means absent.
	Attrs *Attrs
}

// Parent is a node holding ordered children.
type Parent struct {
	// Tag is the element name. Required for serialization.
	Tag string

	// Children are serialized in order. Nil means absent; an empty slice is valid.
	Children []Node

	// Attrs is the attribute mapping. Nil means absent.
	Attrs *Attrs
}

// NewLeaf creates a leaf with the given tag, value and optional attributes.
func NewLeaf(tag, value string, attrs *Attrs) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: attrs}
}

// NewText creates an untagged leaf that serializes to value as-is.
func NewText(value string) *Leaf {
	return NewLeaf("", value, nil)
}

// NewParent creates a parent with the given tag and children.
// A nil children argument is replaced with an empty slice.
func NewParent(tag string, children ...Node) *Parent {
	if children == nil {
		children = []Node{}
	}
	return &Parent{Tag: tag, Children: children}
}

// Append adds children to the end of the parent's children.
func (p *Parent) Append(children ...Node) {
	if p.Children == nil {
		p.Children = make([]Node, 0, len(children))
	}
	p.Children = append(p.Children, children...)
}

// HTML serializes the leaf.
func (l *Leaf) HTML() (string, error) {
	var builder strings.Builder
	if err := l.writeHTML(&builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func (l *Leaf) writeHTML(builder *strings.Builder) error {
	if l == nil {
		return ErrNilNode
	}
	if l.Value == nil {
		return ErrMissingValue
	}

	switch l.Tag {
	case "":
		builder.WriteString(*l.Value)
		return nil
	case TagImage:
		if l.Attrs == nil {
			return fmt.Errorf("<%s>: %w", l.Tag, ErrMissingAttributes)
		}
		builder.WriteString("<" + l.Tag + l.Attrs.HTML() + " />")
		return nil
	case TagLink:
		if l.Attrs == nil {
			return fmt.Errorf("<%s>: %w", l.Tag, ErrMissingAttributes)
		}
	}

	builder.WriteString("<" + l.Tag + l.Attrs.HTML() + ">")
	builder.WriteString(*l.Value)
	builder.WriteString("</" + l.Tag + ">")
	return nil
}

// HTML serializes the parent and all of its descendants.
func (p *Parent) HTML() (string, error) {
	var builder strings.Builder
	if err := p.writeHTML(&builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func (p *Parent) writeHTML(builder *strings.Builder) error {
	if p == nil {
		return ErrNilNode
	}
	if p.Tag == "" {
		return ErrMissingTag
	}
	if p.Children == nil {
		return fmt.Errorf("<%s>: %w", p.Tag, ErrMissingChildren)
	}

	builder.WriteString("<" + p.Tag + p.Attrs.HTML() + ">")
	for idx, child := range p.Children {
		err := ErrNilNode
		if child != nil {
			err = child.writeHTML(builder)
		}
		if err != nil {
			return fmt.Errorf("<%s> child %d: %w", p.Tag, idx, err)
		}
	}
	builder.WriteString("</" + p.Tag + ">")
	return nil
}
