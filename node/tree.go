package node

import (
	"fmt"
	"strings"
)

// Tree is the built content of a page. It can be rendered once; call Clone
// first when the same content has to be rendered for several pages.
type Tree struct {
	children []Node
	consumed bool
}

// Build runs fn against a fresh builder and returns the resulting tree.
func Build(fn func(*Builder)) (*Tree, error) {
	children, err := collect(fn)
	if err != nil {
		return nil, err
	}
	return &Tree{children: children}, nil
}

// Len returns the number of top-level nodes left in the tree.
func (t *Tree) Len() int {
	return len(t.children)
}

// Consumed reports whether the tree has been rendered.
func (t *Tree) Consumed() bool {
	return t.consumed
}

// Clone returns a copy of the tree that can be rendered independently. Nodes
// are immutable once built, so the copy shares them. The copy keeps the
// consumed state: cloning a consumed tree yields an empty, consumed tree, so
// clone before rendering.
func (t *Tree) Clone() *Tree {
	children := make([]Node, len(t.children))
	copy(children, t.children)
	return &Tree{children: children, consumed: t.consumed}
}

// Render renders the tree for page id and releases its nodes. Rendering a
// consumed tree returns an empty string and ErrTreeConsumed.
func (t *Tree) Render(id PageID) (string, error) {
	if t.consumed {
		return "", fmt.Errorf("render for %q: %w", id, ErrTreeConsumed)
	}
	var sb strings.Builder
	for _, child := range t.children {
		render(&sb, child, id)
	}
	t.children = nil
	t.consumed = true
	return sb.String(), nil
}
