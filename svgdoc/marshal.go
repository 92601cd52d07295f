package svgdoc

import "strings"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// String serializes the subtree on a single line, without any whitespace
// between tags. Elements without children are self-closed.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

// Compact serializes the subtree like String, with comments left out.
func (n *Node) Compact() string {
	c := n.Clone()
	c.Filter(func(x *Node) bool { return x.Type == CommentNode })
	return c.String()
}

// Indent serializes the subtree with one element per line, every nesting
// level indented by indent. Elements holding only text stay on one line.
func (n *Node) Indent(indent string) string {
	var b strings.Builder
	n.writeIndent(&b, indent, 0)
	return b.String()
}

// OpenTag returns the start tag of an element, attributes included.
func (n *Node) OpenTag() string {
	var b strings.Builder
	n.writeOpen(&b)
	b.WriteByte('>')
	return b.String()
}

// InnerString serializes the children of n on a single line.
func (n *Node) InnerString() string {
	var b strings.Builder
	for _, c := range n.Children {
		c.write(&b)
	}
	return b.String()
}

func (n *Node) writeOpen(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteByte('"')
	}
}

func (n *Node) write(b *strings.Builder) {
	switch n.Type {
	case TextNode:
		b.WriteString(textEscaper.Replace(n.Value))
	case CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Value)
		b.WriteString("-->")
	default:
		n.writeOpen(b)
		if len(n.Children) == 0 {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for _, c := range n.Children {
			c.write(b)
		}
		b.WriteString("</")
		b.WriteString(n.Name)
		b.WriteByte('>')
	}
}

func (n *Node) textOnly() bool {
	for _, c := range n.Children {
		if c.Type != TextNode {
			return false
		}
	}
	return true
}

func (n *Node) writeIndent(b *strings.Builder, indent string, depth int) {
	pad := strings.Repeat(indent, depth)
	if n.Type != ElementNode || len(n.Children) == 0 || n.textOnly() {
		b.WriteString(pad)
		n.write(b)
		b.WriteByte('\n')
		return
	}
	b.WriteString(pad)
	n.writeOpen(b)
	b.WriteString(">\n")
	for _, c := range n.Children {
		if c.Type == TextNode {
			b.WriteString(pad + indent)
			b.WriteString(textEscaper.Replace(strings.TrimSpace(c.Value)))
			b.WriteByte('\n')
			continue
		}
		c.writeIndent(b, indent, depth+1)
	}
	b.WriteString(pad)
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteString(">\n")
}
