package bundle

import (
	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// bComponent mirrors a component virtual node: it owns the bundle of
// the component's rendered output. Scheduling and lifecycle live
// outside this core; reconciling a component renders it synchronously
// and reconciles the output.
type bComponent struct {
	comp    vdom.Component
	child   bnode
	compKey string
}

func (b *bComponent) key() string { return b.compKey }

func (b *bComponent) firstNode() dom.Node { return b.child.firstNode() }

func (b *bComponent) detach(t *Tree, parent dom.Element, parentRemoved bool) {
	b.child.detach(t, parent, parentRemoved)
}

func (b *bComponent) shift(t *Tree, parent dom.Element, slot Slot) Slot {
	return b.child.shift(t, parent, slot)
}

func (t *Tree) attachComponent(v *vdom.VNode, scope any, parent dom.Element, slot Slot) (Slot, *bComponent) {
	next, child := t.attachNode(v.Comp.Render(), scope, parent, slot)
	return next, &bComponent{comp: v.Comp, child: child, compKey: v.Key}
}

func (t *Tree) patchComponent(v *vdom.VNode, scope any, parent dom.Element, slot Slot, b *bComponent) Slot {
	next := t.reconcileNode(v.Comp.Render(), scope, parent, slot, &b.child)
	b.comp = v.Comp
	b.compKey = v.Key
	return next
}
