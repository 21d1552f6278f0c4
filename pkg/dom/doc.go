// Package dom defines the rendering backend contract consumed by the
// reconciler in pkg/bundle.
//
// A backend supplies opaque handles for live nodes (Node, Element, Text)
// and the primitive mutations the reconciler issues: element and text
// creation, attribute and property updates, insertion, removal, cloning,
// and event listener registration. pkg/memdom provides an in-memory
// implementation; a WASM or remote-protocol backend implements the same
// interfaces against a real browser document.
//
// All backend calls are assumed synchronous. Handles are exclusively
// owned by the bundle node that created or adopted them; the only
// non-owning view is NodeRef, an advisory sink kept pointed at the
// current native node for out-of-band access.
package dom
