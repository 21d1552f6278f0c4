// Package bundle implements the reconciler that keeps a live,
// resource-owning bundle tree in sync with an immutable virtual tree
// from pkg/vdom.
//
// A Tree owns the backend document, the per-tag-name template cache,
// and the observability hooks, and exposes the five operations of the
// reconciliation lifecycle:
//
//	tree := bundle.NewTree(doc)
//	slot, b := tree.Attach(ctx, view(), nil, parent, bundle.AtEnd())
//	tree.Reconcile(ctx, view(), nil, parent, bundle.AtEnd(), b)
//	tree.Detach(b, parent, false)
//
// Attach creates native nodes for a virtual tree; Reconcile patches
// the bundle in place when compatible and replaces it otherwise;
// Detach releases listener registrations and external refs and issues
// exactly one native removal at the subtree root; Shift relocates an
// attached bundle without recreating it; Hydrate adopts pre-existing
// native markup instead of creating nodes.
//
// Reconciliation is single-threaded and not re-entrant: one pass walks
// its affected subtree to completion before another may touch
// overlapping state. A context passed to the entry points carries
// trace context only; a started pass always runs to completion.
package bundle
