package htmlnode

import "errors"

// Sentinel errors returned by HTML when a node is not renderable.
var (
	// ErrMissingValue is returned when a Leaf has no value.
	ErrMissingValue = errors.New("leaf node has no value")

	// ErrMissingAttributes is returned when an img or a Leaf has no attribute mapping.
	ErrMissingAttributes = errors.New("leaf node requires attributes")

	// ErrMissingTag is returned when a Parent has no tag.
	ErrMissingTag = errors.New("parent node has no tag")

	// ErrMissingChildren is returned when a Parent has a nil children slice.
	ErrMissingChildren = errors.New("parent node has no children")

	// ErrNilNode is returned for a nil child, whether a nil interface or a
	// nil *Leaf or *Parent.
	ErrNilNode = errors.New("node is nil")
)
