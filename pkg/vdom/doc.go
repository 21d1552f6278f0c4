// Package vdom provides the immutable virtual node model for Loom.
//
// A VNode describes desired UI structure as pure data: elements, text,
// ordered lists, components, and portals. VNodes hold no live
// resources and are cheap to share; the live mirror of an attached
// tree is the bundle tree in pkg/bundle.
//
// # Building trees
//
// Elements are created with variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Arguments may be attributes, listeners, children, strings (shorthand
// for text nodes), components, refs, or nil (ignored, enabling
// conditional construction).
//
// # Form elements
//
// Input and Textarea are distinct tag sub-kinds: their value (and for
// inputs, checked state) is a live property with browser semantics
// different from ordinary attributes. Value/Checked given to their
// factories are lifted out of the attribute list and pushed as
// properties on every reconcile.
package vdom
