package node

import (
	"fmt"
	"strings"
)

func firstAttrs(attrs []Attrs) Attrs {
	if len(attrs) == 0 {
		return Attrs{}
	}
	return attrs[0]
}

func element(tag, content string, a Attrs, newline bool) *Literal {
	var sb strings.Builder
	openTag(&sb, tag, a)
	sb.WriteString(content)
	closeTag(&sb, tag)
	if newline {
		sb.WriteByte('\n')
	}
	return Text(sb.String())
}

// P returns a paragraph holding text.
func P(text string, attrs ...Attrs) *Literal {
	return element("p", text, firstAttrs(attrs), true)
}

// B wraps text in <b>.
func B(text string, attrs ...Attrs) *Literal {
	return element("b", text, firstAttrs(attrs), false)
}

// I wraps text in <i>.
func I(text string, attrs ...Attrs) *Literal {
	return element("i", text, firstAttrs(attrs), false)
}

// S wraps text in <s>.
func S(text string, attrs ...Attrs) *Literal {
	return element("s", text, firstAttrs(attrs), false)
}

// U wraps text in <u>.
func U(text string, attrs ...Attrs) *Literal {
	return element("u", text, firstAttrs(attrs), false)
}

// Strong wraps text in <strong>.
func Strong(text string, attrs ...Attrs) *Literal {
	return element("strong", text, firstAttrs(attrs), false)
}

// Em wraps text in <em>.
func Em(text string, attrs ...Attrs) *Literal {
	return element("em", text, firstAttrs(attrs), false)
}

// Small wraps text in <small>.
func Small(text string, attrs ...Attrs) *Literal {
	return element("small", text, firstAttrs(attrs), false)
}

// Sub wraps text in <sub>.
func Sub(text string, attrs ...Attrs) *Literal {
	return element("sub", text, firstAttrs(attrs), false)
}

// Sup wraps text in <sup>.
func Sup(text string, attrs ...Attrs) *Literal {
	return element("sup", text, firstAttrs(attrs), false)
}

// Ins wraps text in <ins>.
func Ins(text string, attrs ...Attrs) *Literal {
	return element("ins", text, firstAttrs(attrs), false)
}

// Del wraps text in <del>.
func Del(text string, attrs ...Attrs) *Literal {
	return element("del", text, firstAttrs(attrs), false)
}

// Code returns inline code.
func Code(text string, attrs ...Attrs) *Literal {
	return element("code", text, firstAttrs(attrs), false)
}

// CodeBlock returns a preformatted code block.
func CodeBlock(text string, attrs ...Attrs) *Literal {
	return element("pre", "<code>"+text+"</code>", firstAttrs(attrs), true)
}

// A returns an anchor that opens href in a new browsing context.
func A(href, content string, attrs ...Attrs) *Literal {
	return anchor(href, content, true, firstAttrs(attrs))
}

// LocalA returns an anchor that opens href in the current browsing context.
func LocalA(href, content string, attrs ...Attrs) *Literal {
	return anchor(href, content, false, firstAttrs(attrs))
}

// ANode is A with node content. The content must have a static form.
func ANode(href string, content Node, attrs ...Attrs) (*Literal, error) {
	text, err := Static(content)
	if err != nil {
		return nil, err
	}
	return A(href, text, attrs...), nil
}

func anchor(href, content string, blank bool, a Attrs) *Literal {
	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(href)
	sb.WriteByte('"')
	if blank {
		sb.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	a.write(&sb)
	sb.WriteByte('>')
	sb.WriteString(content)
	sb.WriteString("</a>")
	return Text(sb.String())
}

// H returns a heading of the given level, which must be between 1 and 6.
func H(level int, content string, attrs ...Attrs) (*Literal, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	return element(fmt.Sprintf("h%d", level), content, firstAttrs(attrs), true), nil
}

// HNode is H with node content. The content must have a static form.
func HNode(level int, content Node, attrs ...Attrs) (*Literal, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	text, err := Static(content)
	if err != nil {
		return nil, err
	}
	return H(level, text, attrs...)
}

func checkLevel(level int) error {
	if level < 1 || level > 6 {
		return fmt.Errorf("heading level %d must be 1 to 6: %w", level, ErrInvalidArgument)
	}
	return nil
}
