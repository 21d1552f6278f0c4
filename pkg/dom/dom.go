package dom

// SVGNamespace is the namespace URI for svg elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

// MathMLNamespace is the namespace URI for MathML elements.
const MathMLNamespace = "http://www.w3.org/1998/Math/MathML"

// HTMLNamespace is the default namespace for HTML elements.
const HTMLNamespace = "http://www.w3.org/1999/xhtml"

// NodeType discriminates the concrete kind behind a Node handle.
type NodeType uint8

const (
	ElementNode NodeType = iota // An element (Element handle)
	TextNode                    // A text node (Text handle)
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is an opaque handle to a live native node.
type Node interface {
	// NodeType reports whether the handle is an element or a text node.
	NodeType() NodeType
}

// Element is a handle to a live native element.
type Element interface {
	Node

	// TagName returns the element's tag name in lowercase.
	TagName() string

	// Namespace returns the element's namespace URI, or "" for HTML.
	Namespace() string

	// SetAttribute sets or replaces an attribute.
	SetAttribute(key, value string)

	// RemoveAttribute removes an attribute. Removing an absent
	// attribute is a no-op.
	RemoveAttribute(key string)

	// SetProperty sets a live property such as an input's value or
	// checked state. Properties are distinct from attributes: they
	// reflect current state, not authored markup.
	SetProperty(key string, value any)

	// InsertBefore inserts child before ref among this element's
	// children. A nil ref appends. If child already has a parent it is
	// first removed from it, so insertion doubles as relocation.
	InsertBefore(child, ref Node)

	// RemoveChild removes child from this element. It returns an error
	// if child is not currently a child of this element.
	RemoveChild(child Node) error

	// CloneNode returns a shallow clone: same tag, namespace, and
	// attributes; no children, listeners, or parent.
	CloneNode() Element

	// AddEventListener registers h for the named event and returns the
	// registration handle used to release it.
	AddEventListener(event string, h Handler) Registration

	// ChildNodes returns the element's current children in order.
	ChildNodes() []Node
}

// Text is a handle to a live native text node.
type Text interface {
	Node

	// Data returns the current text content.
	Data() string

	// SetData replaces the text content.
	SetData(data string)
}

// Document creates native nodes. Creation is assumed to succeed; a
// backend for which a rendering primitive can genuinely fail has no
// meaningful fallback and should panic rather than return a handle.
type Document interface {
	// CreateElement creates an element in the default HTML namespace.
	CreateElement(tag string) Element

	// CreateElementNS creates an element in the given namespace.
	CreateElementNS(namespace, tag string) Element

	// CreateText creates a text node with the given content.
	CreateText(data string) Text
}

// Event is delivered to registered handlers.
type Event interface {
	// Type returns the event name, e.g. "click".
	Type() string

	// Target returns the node the event was dispatched on.
	Target() Node
}

// Handler is an event callback.
type Handler func(Event)

// Registration is the handle returned by AddEventListener.
type Registration interface {
	// Remove releases the registration. Remove is idempotent.
	Remove()
}
