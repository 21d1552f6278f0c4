package memdom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/loom-dev/loom/pkg/dom"
)

// ParseInto parses an HTML fragment — typically server-produced
// markup — and appends the resulting nodes to parent. Parsed nodes do
// not count toward Stats: they model markup that already exists before
// the reconciler runs.
func (d *Document) ParseInto(parent dom.Element, markup string) error {
	p, ok := parent.(*Element)
	if !ok {
		return fmt.Errorf("memdom: parent is not a memdom element")
	}

	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return fmt.Errorf("memdom: parse fragment: %w", err)
	}

	for _, n := range nodes {
		child := d.convert(n)
		if child == nil {
			continue
		}
		p.children = append(p.children, child)
		setParent(child, p)
	}
	return nil
}

// convert translates a parsed html.Node subtree into memdom nodes.
// Comments and other non-content nodes are dropped.
func (d *Document) convert(n *html.Node) dom.Node {
	switch n.Type {
	case html.TextNode:
		return d.newText(n.Data)
	case html.ElementNode:
		el := d.newElement(namespaceURI(n.Namespace), n.Data)
		for _, a := range n.Attr {
			el.SetAttribute(a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			child := d.convert(c)
			if child == nil {
				continue
			}
			el.children = append(el.children, child)
			setParent(child, el)
		}
		return el
	default:
		return nil
	}
}

// namespaceURI maps the parser's short namespace tokens to URIs.
func namespaceURI(ns string) string {
	switch ns {
	case "svg":
		return dom.SVGNamespace
	case "math":
		return dom.MathMLNamespace
	default:
		return ""
	}
}
