// Package node implements the page-aware content nodes that make up a page body.
//
// A node tree is assembled once through a Builder and rendered for a page by
// passing that page's identity into every render call. Most nodes ignore the
// identity; relative links and dynamic literals use it to decide their output.
package node

import (
	"errors"
	"fmt"
	"strings"
)

// PageID identifies the page currently being rendered.
type PageID string

var (
	// ErrInvalidArgument is returned when a node is constructed from invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTreeConsumed is returned when a tree is rendered a second time.
	ErrTreeConsumed = errors.New("tree already rendered")
)

// Node is one of *Literal, *Container, *List, *RelativeLink or Break.
type Node interface {
	node()
}

// Literal renders fixed text, or text computed from the current page.
type Literal struct {
	text    string
	dynamic func(PageID) string
}

// Container renders its children in order, wrapped in tag when tag is set.
type Container struct {
	tag      string
	attrs    Attrs
	children []Node
}

// List renders each child inside an <li> element, wrapped in tag.
type List struct {
	tag      string
	attrs    Attrs
	children []Node
}

// Resolver maps the current page to a link target. It reports false when no
// link should be emitted, which by convention means the target is the current page.
type Resolver func(current PageID) (href string, ok bool)

// RelativeLink renders as an anchor, or as bold text on the page it points to.
type RelativeLink struct {
	resolve      Resolver
	content      string
	currentClass string
}

// Break renders a line break.
type Break struct{}

func (*Literal) node()      {}
func (*Container) node()    {}
func (*List) node()         {}
func (*RelativeLink) node() {}
func (Break) node()         {}

// Br is the line break node.
var Br = Break{}

// Text returns a literal rendering s for every page.
func Text(s string) *Literal {
	return &Literal{text: s}
}

// TextFunc returns a literal whose text is computed from the current page.
func TextFunc(fn func(PageID) string) *Literal {
	return &Literal{dynamic: fn}
}

// NewRelativeLink returns a link that is inert on the page it resolves to.
// currentClass is applied to the inert form and omitted when empty.
func NewRelativeLink(resolve Resolver, content, currentClass string) *RelativeLink {
	return &RelativeLink{resolve: resolve, content: content, currentClass: currentClass}
}

// LinkTo returns a resolver pointing at href from every page except target.
func LinkTo(target PageID, href string) Resolver {
	return func(current PageID) (string, bool) {
		if current == target {
			return "", false
		}
		return href, true
	}
}

// Render renders n for the page identified by id. It has no side effects and
// may be called any number of times on the same node.
func Render(n Node, id PageID) string {
	var sb strings.Builder
	render(&sb, n, id)
	return sb.String()
}

func render(sb *strings.Builder, n Node, id PageID) {
	switch v := n.(type) {
	case *Literal:
		if v.dynamic != nil {
			sb.WriteString(v.dynamic(id))
			return
		}
		sb.WriteString(v.text)
	case *Container:
		if v.tag == "" {
			for _, child := range v.children {
				render(sb, child, id)
			}
			return
		}
		openTag(sb, v.tag, v.attrs)
		sb.WriteByte('\n')
		for _, child := range v.children {
			render(sb, child, id)
		}
		closeTag(sb, v.tag)
		sb.WriteByte('\n')
	case *List:
		openTag(sb, v.tag, v.attrs)
		sb.WriteByte('\n')
		for _, child := range v.children {
			sb.WriteString("<li>")
			render(sb, child, id)
			sb.WriteString("</li>\n")
		}
		closeTag(sb, v.tag)
		sb.WriteByte('\n')
	case *RelativeLink:
		if href, ok := v.resolve(id); ok {
			fmt.Fprintf(sb, `<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, href, v.content)
			return
		}
		openTag(sb, "b", Attrs{Class: v.currentClass})
		sb.WriteString(v.content)
		closeTag(sb, "b")
	case Break:
		sb.WriteString("<br>")
	case nil:
	default:
		panic(fmt.Sprintf("node: unknown node type %T", n))
	}
}

// Static returns the page-independent form of n. Nodes whose output depends on
// the current page have no such form and report errors.ErrUnsupported.
func Static(n Node) (string, error) {
	if isDynamic(n) {
		return "", fmt.Errorf("static form of %T: %w", n, errors.ErrUnsupported)
	}
	return Render(n, ""), nil
}

func isDynamic(n Node) bool {
	switch v := n.(type) {
	case *Literal:
		return v.dynamic != nil
	case *RelativeLink:
		return true
	case *Container:
		return anyDynamic(v.children)
	case *List:
		return anyDynamic(v.children)
	default:
		return false
	}
}

func anyDynamic(children []Node) bool {
	for _, child := range children {
		if isDynamic(child) {
			return true
		}
	}
	return false
}
