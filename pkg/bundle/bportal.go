package bundle

import (
	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// bPortal mirrors a portal virtual node: its child bundle is mounted
// inside the host element, not at the portal's own position, so the
// portal contributes no native nodes to its parent.
type bPortal struct {
	host      dom.Element
	child     bnode
	portalKey string
}

func (b *bPortal) key() string { return b.portalKey }

func (b *bPortal) firstNode() dom.Node { return nil }

func (b *bPortal) detach(t *Tree, parent dom.Element, parentRemoved bool) {
	// The host outlives the portal regardless of what happens to the
	// portal's own parent.
	b.child.detach(t, b.host, false)
}

func (b *bPortal) shift(t *Tree, parent dom.Element, slot Slot) Slot {
	// Portal content lives in the host; there is nothing to move.
	return slot
}

func (t *Tree) attachPortal(v *vdom.VNode, scope any, parent dom.Element, slot Slot) (Slot, *bPortal) {
	_, child := t.attachNode(portalChild(v), scope, v.Host, AtEnd())
	return slot, &bPortal{host: v.Host, child: child, portalKey: v.Key}
}

func (t *Tree) patchPortal(v *vdom.VNode, scope any, slot Slot, b *bPortal) Slot {
	t.reconcileNode(portalChild(v), scope, b.host, AtEnd(), &b.child)
	b.portalKey = v.Key
	return slot
}

func portalChild(v *vdom.VNode) *vdom.VNode {
	if len(v.Children) == 0 {
		return nil
	}
	return v.Children[0]
}
