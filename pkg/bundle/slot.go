package bundle

import "github.com/loom-dev/loom/pkg/dom"

// Slot is an insertion-position cursor within a parent's native
// children: either the end of the parent or the position immediately
// before a marker node. Successive inserts into the same slot land in
// insertion order, so forward traversal of a child sequence yields the
// sequence's order natively.
type Slot struct {
	ref dom.Node
}

// AtEnd returns the slot denoting the end of the parent's children.
func AtEnd() Slot {
	return Slot{}
}

// Before returns the slot immediately before ref.
func Before(ref dom.Node) Slot {
	return Slot{ref: ref}
}

// IsEnd reports whether the slot appends at the end of the parent.
func (s Slot) IsEnd() bool {
	return s.ref == nil
}

// insert places n into parent at this slot.
func (s Slot) insert(parent dom.Element, n dom.Node) {
	parent.InsertBefore(n, s.ref)
}
