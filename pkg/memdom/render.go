package memdom

import (
	"strings"

	"github.com/loom-dev/loom/pkg/dom"
)

// voidElements cannot have children and serialize without a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// OuterHTML serializes the node and its subtree to HTML. Attributes
// appear in storage order; live properties are not serialized.
func OuterHTML(n dom.Node) string {
	var buf strings.Builder
	writeNode(&buf, n)
	return buf.String()
}

// InnerHTML serializes the element's children in order.
func InnerHTML(el dom.Element) string {
	e, ok := el.(*Element)
	if !ok {
		return ""
	}
	var buf strings.Builder
	for _, c := range e.children {
		writeNode(&buf, c)
	}
	return buf.String()
}

func writeNode(buf *strings.Builder, n dom.Node) {
	switch v := n.(type) {
	case *Text:
		buf.WriteString(escapeHTML(v.data))
	case *Element:
		buf.WriteByte('<')
		buf.WriteString(v.tag)
		for _, a := range v.attrs {
			buf.WriteByte(' ')
			buf.WriteString(a.key)
			buf.WriteString(`="`)
			buf.WriteString(escapeAttr(a.value))
			buf.WriteByte('"')
		}
		buf.WriteByte('>')
		if voidElements[v.tag] && v.namespace == "" {
			return
		}
		for _, c := range v.children {
			writeNode(buf, c)
		}
		buf.WriteString("</")
		buf.WriteString(v.tag)
		buf.WriteByte('>')
	}
}

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for inclusion in HTML attribute values.
// In addition to the standard entities it escapes whitespace
// characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\n':
			buf.WriteString("&#10;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
