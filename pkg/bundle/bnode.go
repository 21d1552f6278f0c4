package bundle

import (
	"reflect"

	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// bnode is the closed bundle node variant: the live, resource-owning
// mirror of an attached virtual node. Exactly five implementations
// exist, one per virtual node kind. A bundle node is exclusively owned
// by its parent; the only non-owning view of its native handle is the
// external ref.
type bnode interface {
	// detach releases the node's resources and recursively detaches
	// its children. parentRemoved indicates an ancestor's native node
	// is itself being removed, so the native removal call is skipped:
	// removing the subtree root removes descendants implicitly.
	detach(t *Tree, parent dom.Element, parentRemoved bool)

	// shift relocates the node's native representation to a new
	// parent/slot without recreating it, preserving listener
	// registrations and ref bindings.
	shift(t *Tree, parent dom.Element, slot Slot) Slot

	// firstNode returns the first native node of the subtree, or nil
	// if the subtree renders nothing (empty list, portal).
	firstNode() dom.Node

	// key returns the carried-over reconciliation key, or "".
	key() string
}

// Bundle is the public handle to an attached bundle tree. It is
// created by Attach or Hydrate, mutated in place by Reconcile, and
// destroyed by Detach.
type Bundle struct {
	n bnode
}

// Key returns the root node's reconciliation key, or "".
func (b *Bundle) Key() string {
	return b.n.key()
}

// attachNode creates the bundle for v and inserts its native
// representation into parent at slot. A nil v attaches an empty list.
func (t *Tree) attachNode(v *vdom.VNode, scope any, parent dom.Element, slot Slot) (Slot, bnode) {
	if v == nil {
		return slot, &bList{}
	}
	switch v.Kind {
	case vdom.KindText:
		return t.attachText(v, parent, slot)
	case vdom.KindTag:
		return t.attachTag(v, scope, parent, slot)
	case vdom.KindList:
		return t.attachList(v, scope, parent, slot)
	case vdom.KindComponent:
		return t.attachComponent(v, scope, parent, slot)
	case vdom.KindPortal:
		return t.attachPortal(v, scope, parent, slot)
	default:
		return slot, &bList{}
	}
}

// reconcileNode patches *b in place when the existing bundle is
// compatible with v, and replaces it at the same position otherwise.
func (t *Tree) reconcileNode(v *vdom.VNode, scope any, parent dom.Element, slot Slot, b *bnode) Slot {
	if v == nil {
		v = &vdom.VNode{Kind: vdom.KindList}
	}
	switch v.Kind {
	case vdom.KindText:
		if bt, ok := (*b).(*bText); ok {
			return t.patchText(v, bt)
		}
	case vdom.KindTag:
		if bt, ok := (*b).(*bTag); ok && bt.nodeKey == v.Key && bt.sameKind(v) {
			return t.patchTag(v, scope, bt)
		}
	case vdom.KindList:
		if bl, ok := (*b).(*bList); ok && bl.listKey == v.Key {
			return t.patchList(v, scope, parent, slot, bl)
		}
	case vdom.KindComponent:
		if bc, ok := (*b).(*bComponent); ok && bc.compKey == v.Key && sameComponentType(bc.comp, v.Comp) {
			return t.patchComponent(v, scope, parent, slot, bc)
		}
	case vdom.KindPortal:
		if bp, ok := (*b).(*bPortal); ok && bp.portalKey == v.Key && bp.host == v.Host {
			return t.patchPortal(v, scope, slot, bp)
		}
	}
	return t.replace(v, scope, parent, slot, b)
}

// replace attaches v at the old bundle's position, then detaches the
// old bundle. The fresh bundle takes over the slot in *b.
func (t *Tree) replace(v *vdom.VNode, scope any, parent dom.Element, slot Slot, b *bnode) Slot {
	old := *b
	pos := slot
	if first := old.firstNode(); first != nil {
		pos = Before(first)
	}
	next, fresh := t.attachNode(v, scope, parent, pos)
	old.detach(t, parent, false)
	*b = fresh
	return next
}

// compatible mirrors reconcileNode's patch conditions: it reports
// whether b can be patched in place to represent v.
func compatible(v *vdom.VNode, b bnode) bool {
	if v == nil || b == nil {
		return false
	}
	switch v.Kind {
	case vdom.KindText:
		_, ok := b.(*bText)
		return ok
	case vdom.KindTag:
		bt, ok := b.(*bTag)
		return ok && bt.nodeKey == v.Key && bt.sameKind(v)
	case vdom.KindList:
		bl, ok := b.(*bList)
		return ok && bl.listKey == v.Key
	case vdom.KindComponent:
		bc, ok := b.(*bComponent)
		return ok && bc.compKey == v.Key && sameComponentType(bc.comp, v.Comp)
	case vdom.KindPortal:
		bp, ok := b.(*bPortal)
		return ok && bp.portalKey == v.Key && bp.host == v.Host
	default:
		return false
	}
}

func sameComponentType(a, b vdom.Component) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
