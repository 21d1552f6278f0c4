package bundle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// ErrHydrationMismatch marks a fatal structural divergence between the
// virtual tree and pre-existing native markup. There is no recovery:
// silently patching over a divergence would render incorrect UI
// undetected.
var ErrHydrationMismatch = errors.New("hydration mismatch")

// HydrationError carries the expected-vs-found diagnostic for a
// structural hydration mismatch.
type HydrationError struct {
	Expected string
	Found    string
}

// Error implements error.
func (e *HydrationError) Error() string {
	return fmt.Sprintf("hydration mismatch: expected %s, found %s", e.Expected, e.Found)
}

// Unwrap makes the error match ErrHydrationMismatch with errors.Is.
func (e *HydrationError) Unwrap() error {
	return ErrHydrationMismatch
}

// Fragment is a pre-order cursor over existing native nodes, consumed
// front to back during hydration.
type Fragment struct {
	nodes []dom.Node
}

// CollectChildren captures parent's current children as a Fragment.
func CollectChildren(parent dom.Element) *Fragment {
	return &Fragment{nodes: parent.ChildNodes()}
}

// NewFragment wraps an explicit node sequence.
func NewFragment(nodes []dom.Node) *Fragment {
	return &Fragment{nodes: nodes}
}

// Len returns the number of unconsumed nodes.
func (f *Fragment) Len() int {
	return len(f.nodes)
}

func (f *Fragment) peek() dom.Node {
	if len(f.nodes) == 0 {
		return nil
	}
	return f.nodes[0]
}

func (f *Fragment) popFront() dom.Node {
	if len(f.nodes) == 0 {
		return nil
	}
	n := f.nodes[0]
	f.nodes = f.nodes[1:]
	return n
}

// trimStart drops leading whitespace-only text nodes. Server output
// and client virtual-text boundaries may differ in insignificant
// whitespace only; runs of adjacent whitespace nodes collapse here.
func (f *Fragment) trimStart() {
	for len(f.nodes) > 0 {
		txt, ok := f.nodes[0].(dom.Text)
		if !ok || strings.TrimSpace(txt.Data()) != "" {
			return
		}
		f.nodes = f.nodes[1:]
	}
}

func (t *Tree) hydrateNode(v *vdom.VNode, scope any, parent dom.Element, f *Fragment) (bnode, error) {
	if v == nil {
		return &bList{}, nil
	}
	switch v.Kind {
	case vdom.KindText:
		return t.hydrateText(v, parent, f)
	case vdom.KindTag:
		return t.hydrateTag(v, scope, parent, f)
	case vdom.KindList:
		return t.hydrateList(v, scope, parent, f)
	case vdom.KindComponent:
		child, err := t.hydrateNode(v.Comp.Render(), scope, parent, f)
		if err != nil {
			return nil, err
		}
		return &bComponent{comp: v.Comp, child: child, compKey: v.Key}, nil
	case vdom.KindPortal:
		// Portal content never appears at this position in server
		// markup; it is attached fresh into the host.
		_, b := t.attachPortal(v, scope, parent, AtEnd())
		return b, nil
	default:
		return &bList{}, nil
	}
}

func (t *Tree) hydrateText(v *vdom.VNode, parent dom.Element, f *Fragment) (bnode, error) {
	if txt, ok := f.peek().(dom.Text); ok {
		f.popFront()
		if txt.Data() != v.Text {
			t.logger.Debug("hydration adjusted text content",
				"expected", v.Text, "found", txt.Data())
			txt.SetData(v.Text)
		}
		return &bText{handle: txt, text: v.Text}, nil
	}

	// The server collapsed this text node away; create it fresh at the
	// cursor position.
	slot := AtEnd()
	if n := f.peek(); n != nil {
		slot = Before(n)
	}
	_, b := t.attachText(v, parent, slot)
	return b, nil
}

func (t *Tree) hydrateTag(v *vdom.VNode, scope any, parent dom.Element, f *Fragment) (bnode, error) {
	f.trimStart()

	n := f.popFront()
	if n == nil {
		return nil, &HydrationError{Expected: "<" + v.Tag + ">", Found: "end of fragment"}
	}
	el, ok := n.(dom.Element)
	if !ok {
		return nil, &HydrationError{Expected: "<" + v.Tag + ">", Found: describeNode(n)}
	}
	if el.TagName() != v.Tag {
		return nil, &HydrationError{Expected: "<" + v.Tag + ">", Found: describeNode(n)}
	}

	b := &bTag{
		handle:  el,
		tagName: v.Tag,
		tagKind: v.TagKind,
		nodeKey: v.Key,
		ref:     v.Ref,
	}

	// Attributes and listeners are applied exactly as in a fresh
	// attach; server markup is not trusted as attribute state.
	applyAttributes(el, nil, v.Attrs)
	b.attrs = v.Attrs
	b.regs = t.registerListeners(el, v.Listeners)
	b.listeners = v.Listeners

	switch v.TagKind {
	case vdom.TagInput, vdom.TagTextarea:
		syncForm(el, v)
	default:
		sub := CollectChildren(el)
		children, err := t.hydrateList(childrenOf(v), scope, el, sub)
		if err != nil {
			return nil, err
		}
		sub.trimStart()
		if sub.Len() > 0 {
			return nil, &HydrationError{
				Expected: "end of children of <" + v.Tag + ">",
				Found:    describeNode(sub.peek()),
			}
		}
		b.children = children
	}

	if v.Ref != nil {
		v.Ref.Set(el)
	}
	return b, nil
}

func (t *Tree) hydrateList(v *vdom.VNode, scope any, parent dom.Element, f *Fragment) (*bList, error) {
	b := &bList{
		listKey:  v.Key,
		children: make([]bnode, 0, len(v.Children)),
	}
	for _, cv := range v.Children {
		c, err := t.hydrateNode(cv, scope, parent, f)
		if err != nil {
			return nil, err
		}
		b.children = append(b.children, c)
	}
	return b, nil
}

func describeNode(n dom.Node) string {
	switch v := n.(type) {
	case dom.Element:
		return "<" + v.TagName() + ">"
	case dom.Text:
		return fmt.Sprintf("text %q", v.Data())
	default:
		return "unknown node"
	}
}
