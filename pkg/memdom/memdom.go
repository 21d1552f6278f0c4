package memdom

import (
	"fmt"

	"github.com/loom-dev/loom/pkg/dom"
)

// Stats counts the native calls issued against a Document.
type Stats struct {
	ElementsCreated int // CreateElement / CreateElementNS calls
	TextsCreated    int // CreateText calls
	Clones          int // CloneNode calls
	Inserts         int // InsertBefore calls
	Removes         int // RemoveChild calls
}

// Document is an in-memory dom.Document.
type Document struct {
	stats           Stats
	activeListeners int
}

// New creates an empty Document.
func New() *Document {
	return &Document{}
}

// Stats returns the call counts accumulated so far.
func (d *Document) Stats() Stats {
	return d.stats
}

// ResetStats zeroes the call counts. Useful to measure a single
// reconcile pass in isolation.
func (d *Document) ResetStats() {
	d.stats = Stats{}
}

// ActiveListeners returns the number of listener registrations that
// have been added and not yet removed, across all elements.
func (d *Document) ActiveListeners() int {
	return d.activeListeners
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	d.stats.ElementsCreated++
	return d.newElement("", tag)
}

// CreateElementNS implements dom.Document.
func (d *Document) CreateElementNS(namespace, tag string) dom.Element {
	d.stats.ElementsCreated++
	return d.newElement(namespace, tag)
}

// CreateText implements dom.Document.
func (d *Document) CreateText(data string) dom.Text {
	d.stats.TextsCreated++
	return d.newText(data)
}

func (d *Document) newElement(namespace, tag string) *Element {
	return &Element{doc: d, tag: tag, namespace: namespace}
}

func (d *Document) newText(data string) *Text {
	return &Text{doc: d, data: data}
}

// Element is an in-memory dom.Element.
type Element struct {
	doc       *Document
	tag       string
	namespace string
	attrs     []attrPair
	props     map[string]any
	parent    *Element
	children  []dom.Node
	listeners []*registration
}

type attrPair struct {
	key, value string
}

// NodeType implements dom.Node.
func (e *Element) NodeType() dom.NodeType { return dom.ElementNode }

// TagName implements dom.Element.
func (e *Element) TagName() string { return e.tag }

// Namespace implements dom.Element.
func (e *Element) Namespace() string { return e.namespace }

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(key, value string) {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attrPair{key: key, value: value})
}

// RemoveAttribute implements dom.Element.
func (e *Element) RemoveAttribute(key string) {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attribute returns the attribute value and whether it is set.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

// SetProperty implements dom.Element.
func (e *Element) SetProperty(key string, value any) {
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[key] = value
}

// Property returns the live property value, or nil if never set.
func (e *Element) Property(key string) any {
	return e.props[key]
}

// InsertBefore implements dom.Element. A parented child is first
// removed from its current parent, so insertion doubles as relocation.
func (e *Element) InsertBefore(child, ref dom.Node) {
	e.doc.stats.Inserts++
	detachFromParent(child)
	setParent(child, e)

	if ref == nil {
		e.children = append(e.children, child)
		return
	}
	for i, c := range e.children {
		if c == ref {
			e.children = append(e.children[:i], append([]dom.Node{child}, e.children[i:]...)...)
			return
		}
	}
	// Unknown ref degrades to append, mirroring a stale-anchor insert.
	e.children = append(e.children, child)
}

// RemoveChild implements dom.Element.
func (e *Element) RemoveChild(child dom.Node) error {
	e.doc.stats.Removes++
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			setParent(child, nil)
			return nil
		}
	}
	return fmt.Errorf("memdom: node is not a child of <%s>", e.tag)
}

// CloneNode implements dom.Element: same tag, namespace, and
// attributes; no children, listeners, parent, or properties.
func (e *Element) CloneNode() dom.Element {
	e.doc.stats.Clones++
	clone := e.doc.newElement(e.namespace, e.tag)
	clone.attrs = append([]attrPair(nil), e.attrs...)
	return clone
}

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(event string, h dom.Handler) dom.Registration {
	reg := &registration{el: e, event: event, handler: h, active: true}
	e.listeners = append(e.listeners, reg)
	e.doc.activeListeners++
	return reg
}

// ChildNodes implements dom.Element.
func (e *Element) ChildNodes() []dom.Node {
	return append([]dom.Node(nil), e.children...)
}

// Dispatch synthesizes an event of the given type on this element and
// invokes its registered handlers in registration order. There is no
// bubbling; the event is delivered to this element only.
func (e *Element) Dispatch(eventType string) {
	for _, reg := range append([]*registration(nil), e.listeners...) {
		if reg.active && reg.event == eventType {
			reg.handler(&event{typ: eventType, target: e})
		}
	}
}

// Text is an in-memory dom.Text.
type Text struct {
	doc    *Document
	data   string
	parent *Element
}

// NodeType implements dom.Node.
func (t *Text) NodeType() dom.NodeType { return dom.TextNode }

// Data implements dom.Text.
func (t *Text) Data() string { return t.data }

// SetData implements dom.Text.
func (t *Text) SetData(data string) { t.data = data }

type registration struct {
	el      *Element
	event   string
	handler dom.Handler
	active  bool
}

// Remove implements dom.Registration.
func (r *registration) Remove() {
	if !r.active {
		return
	}
	r.active = false
	r.el.doc.activeListeners--
	for i, reg := range r.el.listeners {
		if reg == r {
			r.el.listeners = append(r.el.listeners[:i], r.el.listeners[i+1:]...)
			return
		}
	}
}

type event struct {
	typ    string
	target dom.Node
}

// Type implements dom.Event.
func (e *event) Type() string { return e.typ }

// Target implements dom.Event.
func (e *event) Target() dom.Node { return e.target }

func detachFromParent(n dom.Node) {
	p := parentOf(n)
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	setParent(n, nil)
}

func parentOf(n dom.Node) *Element {
	switch v := n.(type) {
	case *Element:
		return v.parent
	case *Text:
		return v.parent
	default:
		return nil
	}
}

func setParent(n dom.Node, p *Element) {
	switch v := n.(type) {
	case *Element:
		v.parent = p
	case *Text:
		v.parent = p
	}
}
