package svgdoc

import "strings"

// NodeType distinguishes the kinds of nodes kept in a document tree.
type NodeType int

// The node types of a parsed document.
const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
)

// Attr is a single attribute. Name keeps its namespace prefix ("xlink:href").
type Attr struct {
	Name  string
	Value string
}

// Node is an element, text or comment of a document tree.
// Elements keep their attributes in source order.
type Node struct {
	Type     NodeType
	Name     string
	Value    string
	Attrs    []Attr
	Children []*Node
}

// NewElement creates an element node with the given attributes.
func NewElement(name string, attrs ...Attr) *Node {
	return &Node{Type: ElementNode, Name: name, Attrs: attrs}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the value of an existing attribute in place, or appends it.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes every attribute for which drop returns true.
func (n *Node) RemoveAttr(drop func(Attr) bool) {
	kept := n.Attrs[:0]
	for _, a := range n.Attrs {
		if !drop(a) {
			kept = append(kept, a)
		}
	}
	n.Attrs = kept
}

// Elements returns the element children of n.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	c := &Node{
		Type:  n.Type,
		Name:  n.Name,
		Value: n.Value,
		Attrs: append([]Attr(nil), n.Attrs...),
	}
	for _, ch := range n.Children {
		c.Children = append(c.Children, ch.Clone())
	}
	return c
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(n *Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Filter removes, recursively, every descendant for which drop returns true.
func (n *Node) Filter(drop func(*Node) bool) {
	kept := n.Children[:0]
	for _, c := range n.Children {
		if drop(c) {
			continue
		}
		c.Filter(drop)
		kept = append(kept, c)
	}
	n.Children = kept
}

// Prefix returns the namespace prefix of a qualified name, or "".
func Prefix(name string) string {
	if i := strings.IndexByte(name, ':'); i > 0 {
		return name[:i]
	}
	return ""
}
