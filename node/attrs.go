package node

import "strings"

// Attrs holds the optional id, class and style attributes of an element.
// Empty fields are left out of the rendered tag.
type Attrs struct {
	ID    string
	Class string
	Style string
}

func (a Attrs) String() string {
	var sb strings.Builder
	a.write(&sb)
	return sb.String()
}

func (a Attrs) write(sb *strings.Builder) {
	attr(sb, "id", a.ID)
	attr(sb, "class", a.Class)
	attr(sb, "style", a.Style)
}

func attr(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(value)
	sb.WriteByte('"')
}

func openTag(sb *strings.Builder, tag string, a Attrs) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	a.write(sb)
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}
