package graph

import (
	"maps"
	"slices"

	"github.com/matzehuels/squashgraph/pkg/migration"
)

// Edge is a directed edge from a migration to one of its dependents.
type Edge struct {
	From migration.RecordID // depended upon
	To   migration.RecordID // dependent
}

// Options configures [Build].
type Options struct {
	// HideReplaced removes squashed migrations from the graph and redirects
	// dependencies on them to their replacement.
	HideReplaced bool
}

// Graph is the resolved migration graph. The zero value is empty; use
// [Build] to construct one. A Graph is never modified after Build returns.
type Graph struct {
	groups       migration.Groups
	hideReplaced bool

	nodes        map[migration.RecordID]struct{}
	edges        map[migration.RecordID]map[migration.RecordID]struct{}
	replacements map[migration.RecordID]migration.RecordID
	squashes     map[migration.RecordID]struct{}
	notices      []Notice
}

// Groups returns the app labels the graph was built for.
func (g *Graph) Groups() migration.Groups { return g.groups }

// HideReplaced reports whether squashed migrations are hidden.
func (g *Graph) HideReplaced() bool { return g.hideReplaced }

// Nodes returns every registered node, including hidden ones, sorted.
func (g *Graph) Nodes() []migration.RecordID {
	return sortedKeys(g.nodes)
}

// VisibleNodes returns the nodes a renderer should draw, sorted.
func (g *Graph) VisibleNodes() []migration.RecordID {
	var out []migration.RecordID
	for _, id := range g.Nodes() {
		if !g.IsHidden(id) {
			out = append(out, id)
		}
	}
	return out
}

// HasNode reports whether id was registered.
func (g *Graph) HasNode(id migration.RecordID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Successors returns the dependents of id, sorted.
func (g *Graph) Successors(id migration.RecordID) []migration.RecordID {
	return sortedKeys(g.edges[id])
}

// Edges returns all edges sorted by source, then destination.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, from := range sortedKeys(g.edges) {
		for _, to := range sortedKeys(g.edges[from]) {
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, dst := range g.edges {
		n += len(dst)
	}
	return n
}

// Replacements returns a copy of the replacement map.
func (g *Graph) Replacements() map[migration.RecordID]migration.RecordID {
	return maps.Clone(g.replacements)
}

// Replaced returns every squashed migration id, sorted.
func (g *Graph) Replaced() []migration.RecordID {
	return sortedKeys(g.replacements)
}

// ReplacedBy returns the direct replacement of id.
func (g *Graph) ReplacedBy(id migration.RecordID) (migration.RecordID, bool) {
	r, ok := g.replacements[id]
	return r, ok
}

// IsReplaced reports whether id was squashed into another migration.
func (g *Graph) IsReplaced(id migration.RecordID) bool {
	_, ok := g.replacements[id]
	return ok
}

// IsSquash reports whether id replaces other migrations.
func (g *Graph) IsSquash(id migration.RecordID) bool {
	_, ok := g.squashes[id]
	return ok
}

// IsHidden reports whether id is a squashed migration left out of rendering.
func (g *Graph) IsHidden(id migration.RecordID) bool {
	return g.hideReplaced && g.IsReplaced(id)
}

// IsCrossGroup reports whether id has a visible dependent in another app.
func (g *Graph) IsCrossGroup(id migration.RecordID) bool {
	for dst := range g.edges[id] {
		if dst.App != id.App && !g.IsHidden(dst) {
			return true
		}
	}
	return false
}

// Replacement follows the replacement chain from id and returns the final
// migration. It returns id unchanged when id is not squashed.
func (g *Graph) Replacement(id migration.RecordID) migration.RecordID {
	return resolve(g.replacements, id)
}

// Notices returns the substitution notices in emission order.
func (g *Graph) Notices() []Notice { return slices.Clone(g.notices) }

func sortedKeys[V any](m map[migration.RecordID]V) []migration.RecordID {
	ids := slices.Collect(maps.Keys(m))
	migration.Sort(ids)
	return ids
}
