// Package dot renders a migration graph as Graphviz DOT source.
//
// # Usage
//
//	g := graph.Build(records, groups, graph.Options{HideReplaced: true})
//	src := dot.ToDOT(g, dot.Options{})
//
// The output is deterministic: nodes are sorted by app then name, edges by
// source then destination. Hidden squashed migrations are left out entirely,
// both as nodes and as edge endpoints.
//
// # Styling
//
// Every node is filled. The fill color encodes derived state:
//
//   - blue (#79aec8): regular migration
//   - red (#d9534f): migration with a dependent in another app
//   - grey (#eeeeee): squashed migration (only when shown)
//
// Squashing migrations get a "(squash)" label suffix, squashed ones
// "(squashed)". When squashed migrations are shown, a "replaced ->
// replacement" edge is drawn for each of them ahead of the dependency edges.
package dot
