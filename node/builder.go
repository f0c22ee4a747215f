package node

import "fmt"

// Builder accumulates the children of a container. It is append-only and keeps
// insertion order. The first construction error is kept and every later call
// becomes a no-op; the error surfaces from the constructor that owns the scope.
type Builder struct {
	children []Node
	err      error
}

// Err reports the first construction error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Add appends n as the next child.
func (b *Builder) Add(n Node) *Builder {
	if b.err != nil {
		return b
	}
	if n == nil {
		b.err = fmt.Errorf("nil node: %w", ErrInvalidArgument)
		return b
	}
	b.children = append(b.children, n)
	return b
}

// AddParagraph appends text wrapped in a paragraph.
func (b *Builder) AddParagraph(text string, attrs ...Attrs) *Builder {
	return b.Add(P(text, attrs...))
}

// AddLiteral appends text as is.
func (b *Builder) AddLiteral(text string) *Builder {
	return b.Add(Text(text))
}

// AddCodeBlock appends text as a preformatted code block.
func (b *Builder) AddCodeBlock(text string, attrs ...Attrs) *Builder {
	return b.Add(CodeBlock(text, attrs...))
}

// AddLink appends an anchor showing text and pointing at href.
func (b *Builder) AddLink(text, href string) *Builder {
	return b.Add(A(href, text))
}

// AddHeading appends a heading. Levels outside 1 to 6 record ErrInvalidArgument.
func (b *Builder) AddHeading(text string, level int, attrs ...Attrs) *Builder {
	if b.err != nil {
		return b
	}
	h, err := H(level, text, attrs...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(h)
}

// AddBreak appends a line break.
func (b *Builder) AddBreak() *Builder {
	return b.Add(Br)
}

// Div appends a div whose children are added by fn.
func (b *Builder) Div(a Attrs, fn func(*Builder)) *Builder {
	return b.nest(Div(a, fn))
}

// Paragraph appends a paragraph whose children are added by fn.
func (b *Builder) Paragraph(a Attrs, fn func(*Builder)) *Builder {
	return b.nest(Paragraph(a, fn))
}

// UL appends an unordered list; every child added by fn becomes one item.
func (b *Builder) UL(a Attrs, fn func(*Builder)) *Builder {
	return b.nestList(UL(a, fn))
}

// OL appends an ordered list; every child added by fn becomes one item.
func (b *Builder) OL(a Attrs, fn func(*Builder)) *Builder {
	return b.nestList(OL(a, fn))
}

func (b *Builder) nest(c *Container, err error) *Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(c)
}

func (b *Builder) nestList(l *List, err error) *Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(l)
}

func collect(fn func(*Builder)) ([]Node, error) {
	b := &Builder{}
	if fn != nil {
		fn(b)
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.children, nil
}

func newContainer(tag string, a Attrs, fn func(*Builder)) (*Container, error) {
	children, err := collect(fn)
	if err != nil {
		return nil, err
	}
	return &Container{tag: tag, attrs: a, children: children}, nil
}

func newList(tag string, a Attrs, fn func(*Builder)) (*List, error) {
	children, err := collect(fn)
	if err != nil {
		return nil, err
	}
	return &List{tag: tag, attrs: a, children: children}, nil
}

// Group returns an untagged container; its children render back to back.
func Group(fn func(*Builder)) (*Container, error) {
	return newContainer("", Attrs{}, fn)
}

// Div returns a div container.
func Div(a Attrs, fn func(*Builder)) (*Container, error) {
	return newContainer("div", a, fn)
}

// Paragraph returns a paragraph container, for paragraphs with mixed content.
func Paragraph(a Attrs, fn func(*Builder)) (*Container, error) {
	return newContainer("p", a, fn)
}

// UL returns an unordered list.
func UL(a Attrs, fn func(*Builder)) (*List, error) {
	return newList("ul", a, fn)
}

// OL returns an ordered list.
func OL(a Attrs, fn func(*Builder)) (*List, error) {
	return newList("ol", a, fn)
}
