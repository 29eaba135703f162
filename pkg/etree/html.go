package etree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RootTag is the tag of the synthetic container returned by Parse.
const RootTag = "div"

// bodyContext is the context element for fragment parsing.
var bodyContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// Parse reads an HTML fragment and returns it wrapped in a RootTag element.
// Text nodes are folded into Text of their parent or Tail of their preceding sibling.
func Parse(r io.Reader) (*Element, error) {
	nodes, err := html.ParseFragment(r, bodyContext)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html fragment: %w", err)
	}

	root := New(RootTag)
	for _, n := range nodes {
		appendNode(root, n)
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// appendNode converts n and adds it to parent.
func appendNode(parent *Element, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if last := parent.LastChild(); last != nil {
			last.Tail += n.Data
		} else {
			parent.Text += n.Data
		}
	case html.CommentNode:
		c := New(Comment)
		c.Text = n.Data
		parent.Append(c)
	case html.ElementNode:
		el := New(n.Data)
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.Set(key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendNode(el, c)
		}
		parent.Append(el)
	}
}

// Render writes e, including its own start and end tags, as HTML.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.toNode())
}

// RenderInner writes the content of e (text, children and their tails)
// without e's own tags.
func (e *Element) RenderInner(w io.Writer) error {
	for _, n := range e.contentNodes() {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// InnerHTML returns the rendered content of e.
func (e *Element) InnerHTML() (string, error) {
	var buf bytes.Buffer
	if err := e.RenderInner(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// contentNodes returns the html nodes for e.Text and each child followed by its tail.
func (e *Element) contentNodes() []*html.Node {
	var nodes []*html.Node
	if e.Text != "" {
		nodes = append(nodes, textNode(e.Text))
	}
	for _, child := range e.children {
		nodes = append(nodes, child.toNode())
		if child.Tail != "" {
			nodes = append(nodes, textNode(child.Tail))
		}
	}
	return nodes
}

func (e *Element) toNode() *html.Node {
	if e.Tag == Comment {
		return &html.Node{Type: html.CommentNode, Data: e.Text}
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	for _, a := range e.attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	for _, c := range e.contentNodes() {
		n.AppendChild(c)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
