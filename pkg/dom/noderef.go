package dom

import "sync"

// NodeRef is a caller-supplied sink kept pointed at the current native
// node backing a virtual node, giving out-of-band access to the live
// handle (focus, measurement, imperative APIs).
//
// A NodeRef never owns the node it points at. The reconciler binds it
// after the node fully exists, rebinds it when the ref moves between
// nodes, and clears it on teardown only if it still targets the node
// being torn down — the ref may already have been reused elsewhere.
type NodeRef struct {
	mu   sync.RWMutex
	node Node
}

// NewNodeRef creates an unbound NodeRef.
func NewNodeRef() *NodeRef {
	return &NodeRef{}
}

// Get returns the currently bound node, or nil if unbound.
func (r *NodeRef) Get() Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.node
}

// Set binds the ref to node. A nil node clears the binding.
func (r *NodeRef) Set(node Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.node = node
}

// IsBound reports whether the ref currently points at a node.
func (r *NodeRef) IsBound() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.node != nil
}
