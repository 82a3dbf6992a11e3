package htmlnode

import "errors"

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// ErrSkipChildren can be returned by a WalkFunc on a Parent to skip its
// children without stopping the walk.
var ErrSkipChildren = errors.New("skip children")

// Walk performs a pre-order traversal of the tree starting at root.
// Nil nodes, typed or not, are skipped.
func Walk(root Node, walkFunc WalkFunc) error {
	if isNil(root) {
		return nil
	}

	if err := walkFunc(root); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}

	parent, ok := root.(*Parent)
	if !ok {
		return nil
	}

	for _, child := range parent.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

func isNil(n Node) bool {
	switch node := n.(type) {
	case nil:
		return true
	case *Leaf:
		return node == nil
	case *Parent:
		return node == nil
	default:
		return false
	}
}

// Leaves returns every leaf under root in document order.
func Leaves(root Node) []*Leaf {
	var leaves []*Leaf

	//nolint:errcheck,revive // the callback never fails
	Walk(root, func(n Node) error {
		if leaf, ok := n.(*Leaf); ok {
			leaves = append(leaves, leaf)
		}
		return nil
	})

	return leaves
}

// Count returns the number of leaves and parents under root, root included.
func Count(root Node) (leaves, parents int) {
	//nolint:errcheck,revive // the callback never fails
	Walk(root, func(n Node) error {
		switch n.(type) {
		case *Leaf:
			leaves++
		case *Parent:
			parents++
		}
		return nil
	})
	return leaves, parents
}
