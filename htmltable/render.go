package htmltable

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domonda/go-csvviewer"
)

// ToHTMLNode converts a csvviewer.Node tree to a golang.org/x/net/html tree.
func ToHTMLNode(n *csvviewer.Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, child := range n.Children {
		h.AppendChild(ToHTMLNode(child))
	}
	return h
}

// Render writes n as HTML to w.
// Text and attribute values are escaped.
func Render(w io.Writer, n *csvviewer.Node) error {
	return html.Render(w, ToHTMLNode(n))
}

// Component returns n as templ.Component
// for embedding in templ based pages.
func Component(n *csvviewer.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return Render(w, n)
	})
}
