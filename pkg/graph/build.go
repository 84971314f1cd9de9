package graph

import (
	"github.com/matzehuels/squashgraph/pkg/migration"
)

// Build computes the graph of records restricted to groups.
//
// Records outside groups still count as squashes but contribute neither
// nodes, edges nor replacements. A replaced id declared twice keeps the last
// replacement seen. Dependencies pointing into another group only become
// edges when that group is selected.
func Build(records []migration.Record, groups migration.Groups, opts Options) *Graph {
	g := &Graph{
		groups:       groups,
		hideReplaced: opts.HideReplaced,
		nodes:        make(map[migration.RecordID]struct{}),
		edges:        make(map[migration.RecordID]map[migration.RecordID]struct{}),
		replacements: make(map[migration.RecordID]migration.RecordID),
		squashes:     make(map[migration.RecordID]struct{}),
	}

	for _, r := range records {
		if r.IsSquash() {
			g.squashes[r.ID] = struct{}{}
		}
		if !groups.Contains(r.ID) {
			continue
		}
		for _, replaced := range r.Replaces {
			if replaced == r.ID || !groups.Contains(replaced) {
				continue
			}
			g.replacements[replaced] = r.ID
		}
	}

	for _, r := range records {
		dst := r.ID
		if !groups.Contains(dst) {
			continue
		}
		for _, src := range r.Dependencies {
			resolved := src
			if opts.HideReplaced {
				resolved = resolve(g.replacements, src)
			}
			if resolved != src {
				level := LevelSuccess
				if g.IsReplaced(dst) {
					level = LevelError
				}
				g.notices = append(g.notices, Notice{
					Level:     level,
					Original:  src,
					Resolved:  resolved,
					Dependent: dst,
				})
			}
			if groups.Contains(resolved) {
				g.addEdge(resolved, dst)
			}
		}
		g.nodes[dst] = struct{}{}
	}

	if !opts.HideReplaced {
		for replaced, by := range g.replacements {
			g.nodes[replaced] = struct{}{}
			g.nodes[by] = struct{}{}
		}
	}
	return g
}

func (g *Graph) addEdge(from, to migration.RecordID) {
	dst, ok := g.edges[from]
	if !ok {
		dst = make(map[migration.RecordID]struct{})
		g.edges[from] = dst
	}
	dst[to] = struct{}{}
	g.nodes[from] = struct{}{}
}

// resolve walks the replacement chain starting at id. The walk stops at the
// first id without a replacement, or before revisiting an id, so a cycle
// a -> b -> a starting at a ends at b.
func resolve(replacements map[migration.RecordID]migration.RecordID, id migration.RecordID) migration.RecordID {
	seen := map[migration.RecordID]struct{}{id: {}}
	for {
		next, ok := replacements[id]
		if !ok {
			return id
		}
		if _, loop := seen[next]; loop {
			return id
		}
		seen[next] = struct{}{}
		id = next
	}
}
