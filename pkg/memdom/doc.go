// Package memdom is an in-memory implementation of the pkg/dom backend
// contract.
//
// It exists for two purposes: as a reference backend showing the exact
// mutation semantics the reconciler relies on (insertion relocates a
// parented node, removal of an absent child errors, clones are
// shallow), and as a test harness — it counts native calls (Stats),
// tracks live listener registrations, parses existing markup into
// native nodes for hydration via golang.org/x/net/html, and serializes
// live trees back to HTML for assertions.
package memdom
