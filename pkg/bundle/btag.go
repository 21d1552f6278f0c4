package bundle

import (
	"log/slog"

	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// bTag mirrors a tag virtual node. It owns the native element, the
// registered listener set, and — for plain tags — the child bundle
// list. Input and textarea sub-kinds carry their controlled form state
// instead of children.
type bTag struct {
	handle    dom.Element
	tagName   string
	tagKind   vdom.TagKind
	attrs     vdom.Attrs
	listeners vdom.Listeners
	regs      []dom.Registration
	nodeKey   string
	ref       *dom.NodeRef
	children  *bList // TagOther only
}

func (b *bTag) key() string { return b.nodeKey }

func (b *bTag) firstNode() dom.Node { return b.handle }

// sameKind reports whether v has the same tag sub-kind as b: Input
// matches Input, Textarea matches Textarea, and Other requires an
// equal tag name.
func (b *bTag) sameKind(v *vdom.VNode) bool {
	if b.tagKind != v.TagKind {
		return false
	}
	if v.TagKind == vdom.TagOther {
		return b.tagName == v.Tag
	}
	return true
}

func (b *bTag) detach(t *Tree, parent dom.Element, parentRemoved bool) {
	for _, reg := range b.regs {
		reg.Remove()
	}
	b.regs = nil

	if b.children != nil {
		// This element's removal takes the whole subtree with it, so
		// descendants only release bookkeeping.
		b.children.detach(t, b.handle, true)
	}
	if !parentRemoved {
		if err := parent.RemoveChild(b.handle); err != nil {
			t.logger.Warn("element not found to remove",
				slog.String("tag", b.tagName), slog.Any("error", err))
		}
		t.noteRemoved()
	}
	// The ref may already have been reused for another node; only
	// clear it if it still points at ours.
	if b.ref != nil && b.ref.Get() == b.handle {
		b.ref.Set(nil)
	}
}

func (b *bTag) shift(t *Tree, parent dom.Element, slot Slot) Slot {
	slot.insert(parent, b.handle)
	t.noteMoved()
	return Before(b.handle)
}

func (t *Tree) attachTag(v *vdom.VNode, scope any, parent dom.Element, slot Slot) (Slot, *bTag) {
	el := t.createElement(v, parent)
	slot.insert(parent, el)
	t.noteCreated()

	b := &bTag{
		handle:  el,
		tagName: v.Tag,
		tagKind: v.TagKind,
		nodeKey: v.Key,
		ref:     v.Ref,
	}

	applyAttributes(el, nil, v.Attrs)
	b.attrs = v.Attrs
	b.regs = t.registerListeners(el, v.Listeners)
	b.listeners = v.Listeners

	switch v.TagKind {
	case vdom.TagInput, vdom.TagTextarea:
		syncForm(el, v)
	default:
		_, children := t.attachList(childrenOf(v), scope, el, AtEnd())
		b.children = children
	}

	// Bind the ref only once the element fully exists.
	if v.Ref != nil {
		v.Ref.Set(el)
	}
	return Before(el), b
}

// patchTag updates the existing element in place. The order is fixed:
// attributes, then listeners, then the sub-kind payload — children
// last, because recursion is the expensive part and attribute and
// listener effects must land regardless of what child diffing does.
func (t *Tree) patchTag(v *vdom.VNode, scope any, b *bTag) Slot {
	el := b.handle

	applyAttributes(el, b.attrs, v.Attrs)
	b.attrs = v.Attrs

	if !b.listeners.Equal(v.Listeners) {
		for _, reg := range b.regs {
			reg.Remove()
		}
		b.regs = t.registerListeners(el, v.Listeners)
		b.listeners = v.Listeners
	}

	switch b.tagKind {
	case vdom.TagInput, vdom.TagTextarea:
		// Controlled form state is pushed on every reconcile: the live
		// value drifts with user input and cannot be diffed like an
		// attribute.
		syncForm(el, v)
	default:
		t.patchList(childrenOf(v), scope, el, AtEnd(), b.children)
	}

	b.nodeKey = v.Key

	if v.Ref != b.ref {
		if b.ref != nil && b.ref.Get() == el {
			b.ref.Set(nil)
		}
		b.ref = v.Ref
		if v.Ref != nil {
			v.Ref.Set(el)
		}
	}
	return Before(el)
}

// childrenOf wraps a plain tag's children as an unkeyed list node.
func childrenOf(v *vdom.VNode) *vdom.VNode {
	return &vdom.VNode{Kind: vdom.KindList, Children: v.Children}
}

// createElement creates the native element for v. Namespace selection:
// an explicit xmlns attribute wins, then SVG/MathML is inherited from
// the parent or implied by the svg/math tag name, then the default
// namespace applies and the element is cloned from the per-tag-name
// template cache. The cached template is never mutated, only cloned.
func (t *Tree) createElement(v *vdom.VNode, parent dom.Element) dom.Element {
	if xmlns, ok := v.Attrs.Get("xmlns"); ok {
		return t.doc.CreateElementNS(xmlns, v.Tag)
	}
	if v.Tag == "svg" || parent.Namespace() == dom.SVGNamespace {
		return t.doc.CreateElementNS(dom.SVGNamespace, v.Tag)
	}
	if v.Tag == "math" || parent.Namespace() == dom.MathMLNamespace {
		return t.doc.CreateElementNS(dom.MathMLNamespace, v.Tag)
	}

	tpl, ok := t.templates[v.Tag]
	if !ok {
		tpl = t.doc.CreateElement(v.Tag)
		t.templates[v.Tag] = tpl
	}
	return tpl.CloneNode()
}

// applyAttributes reconciles the element's attribute set from old to
// new. A nil old applies everything. The lists are ordered for
// determinism only; reconciliation is by key.
func applyAttributes(el dom.Element, old, new vdom.Attrs) {
	if len(old) == 0 {
		for _, a := range new {
			el.SetAttribute(a.Key, a.Value)
		}
		return
	}

	prev := make(map[string]string, len(old))
	for _, a := range old {
		prev[a.Key] = a.Value
	}
	for _, a := range new {
		if v, ok := prev[a.Key]; !ok || v != a.Value {
			el.SetAttribute(a.Key, a.Value)
		}
		delete(prev, a.Key)
	}
	for k := range prev {
		el.RemoveAttribute(k)
	}
}

// registerListeners registers the whole listener set and returns the
// registration handles in listener order.
func (t *Tree) registerListeners(el dom.Element, ls vdom.Listeners) []dom.Registration {
	if len(ls) == 0 {
		return nil
	}
	regs := make([]dom.Registration, 0, len(ls))
	for _, l := range ls {
		regs = append(regs, el.AddEventListener(l.Event, l.Handler))
		t.noteListenerRegistered()
	}
	return regs
}

// syncForm pushes controlled value/checked state as live properties.
// Uncontrolled fields (nil) are left to the user agent.
func syncForm(el dom.Element, v *vdom.VNode) {
	if v.Value != nil {
		el.SetProperty("value", *v.Value)
	}
	if v.TagKind == vdom.TagInput && v.Checked != nil {
		el.SetProperty("checked", *v.Checked)
	}
}
