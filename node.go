package csvviewer

import "strings"

// Node is a renderer independent description of a UI element tree.
//
// A Node with an empty Tag is a text node holding Text,
// element nodes have a Tag, optional Attrs, and Children.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// Attr is a key/value attribute of an element Node.
type Attr struct {
	Key string
	Val string
}

// Element returns an element Node.
func Element(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

// TextNode returns a text Node.
func TextNode(text string) *Node {
	return &Node{Text: text}
}

// IsText returns true for text nodes.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of the attribute with key
// and if the attribute exists.
func (n *Node) Attr(key string) (val string, ok bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AppendChild appends children to n and returns n.
func (n *Node) AppendChild(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// TextContent returns the concatenated text of all
// text nodes within n in document order.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(node *Node) bool {
		if node.IsText() {
			b.WriteString(node.Text)
		}
		return true
	})
	return b.String()
}

// Walk calls visit for n and all its descendants in depth-first order.
// If visit returns false, the children of that node are skipped.
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// FindAll returns all nodes within n with the passed tag.
func (n *Node) FindAll(tag string) (found []*Node) {
	n.Walk(func(node *Node) bool {
		if node.Tag == tag {
			found = append(found, node)
		}
		return true
	})
	return found
}
