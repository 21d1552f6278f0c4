package bundle

import (
	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// bList mirrors an ordered child collection. It owns its children but
// no native node of its own; its native representation is the
// concatenation of its children's.
type bList struct {
	children []bnode
	listKey  string
}

func (b *bList) key() string { return b.listKey }

func (b *bList) firstNode() dom.Node {
	for _, c := range b.children {
		if n := c.firstNode(); n != nil {
			return n
		}
	}
	return nil
}

func (b *bList) detach(t *Tree, parent dom.Element, parentRemoved bool) {
	for _, c := range b.children {
		c.detach(t, parent, parentRemoved)
	}
	b.children = nil
}

func (b *bList) shift(t *Tree, parent dom.Element, slot Slot) Slot {
	// Shifting children in order into the same slot preserves their
	// relative order at the destination.
	for _, c := range b.children {
		c.shift(t, parent, slot)
	}
	if n := b.firstNode(); n != nil {
		return Before(n)
	}
	return slot
}

func (t *Tree) attachList(v *vdom.VNode, scope any, parent dom.Element, slot Slot) (Slot, *bList) {
	b := &bList{
		listKey:  v.Key,
		children: make([]bnode, 0, len(v.Children)),
	}
	for _, cv := range v.Children {
		_, c := t.attachNode(cv, scope, parent, slot)
		b.children = append(b.children, c)
	}
	if n := b.firstNode(); n != nil {
		return Before(n), b
	}
	return slot, b
}

// patchList reconciles the child sequence. Compatible head pairs are
// patched in place; the rest is matched through a keyed lookaside over
// the unconsumed old tail, with unkeyed children matched positionally
// only. Survivors found out of position are shifted to the current
// anchor. The result guarantees native sibling order equals the new
// sequence order and keyed survivors are reused; it does not minimize
// the number of moves.
//
// slot is the list's trailing position: where nodes go once the old
// tail is exhausted.
func (t *Tree) patchList(v *vdom.VNode, scope any, parent dom.Element, slot Slot, b *bList) Slot {
	newChildren := v.Children
	next := make([]bnode, 0, len(newChildren))

	// Common prefix: patch compatible head pairs in place.
	i := 0
	for i < len(newChildren) && i < len(b.children) {
		if !compatible(newChildren[i], b.children[i]) {
			break
		}
		c := b.children[i]
		t.reconcileNode(newChildren[i], scope, parent, slot, &c)
		next = append(next, c)
		i++
	}

	// Unconsumed old tail; consumed entries are nilled out. Only keyed
	// nodes enter the lookaside — unkeyed nodes have no stable
	// identity and are matched positionally or replaced.
	rest := b.children[i:]
	lookaside := make(map[string]int, len(rest))
	for j, c := range rest {
		if k := c.key(); k != "" {
			lookaside[k] = j
		}
	}

	head := 0
	advance := func() {
		for head < len(rest) && rest[head] == nil {
			head++
		}
	}
	// anchor is the position of the first surviving unconsumed old
	// child, or the list's trailing slot. Everything placed for the
	// current new child must land there to end up in sequence order.
	anchor := func() Slot {
		for j := head; j < len(rest); j++ {
			if rest[j] == nil {
				continue
			}
			if n := rest[j].firstNode(); n != nil {
				return Before(n)
			}
		}
		return slot
	}

	for ; i < len(newChildren); i++ {
		nv := newChildren[i]
		advance()
		pos := anchor()

		if k := keyOf(nv); k != "" {
			if j, ok := lookaside[k]; ok && rest[j] != nil && compatible(nv, rest[j]) {
				c := rest[j]
				rest[j] = nil
				delete(lookaside, k)
				if j != head {
					c.shift(t, parent, pos)
				}
				t.reconcileNode(nv, scope, parent, pos, &c)
				next = append(next, c)
				continue
			}
			_, c := t.attachNode(nv, scope, parent, pos)
			next = append(next, c)
			continue
		}

		// Unkeyed: consume the unkeyed head positionally (patch or
		// replace in place); keyed leftovers are never reused for
		// unkeyed children.
		if head < len(rest) && rest[head] != nil && rest[head].key() == "" {
			c := rest[head]
			rest[head] = nil
			t.reconcileNode(nv, scope, parent, pos, &c)
			next = append(next, c)
			continue
		}
		_, c := t.attachNode(nv, scope, parent, pos)
		next = append(next, c)
	}

	// Whatever the new sequence did not consume goes away.
	for _, c := range rest {
		if c != nil {
			c.detach(t, parent, false)
		}
	}

	b.children = next
	b.listKey = v.Key
	if n := b.firstNode(); n != nil {
		return Before(n)
	}
	return slot
}

func keyOf(v *vdom.VNode) string {
	if v == nil {
		return ""
	}
	return v.Key
}
