package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/squashgraph/pkg/graph"
	"github.com/matzehuels/squashgraph/pkg/migration"
)

// DefaultName is the graph name used when [Options.Name] is empty.
const DefaultName = "migrations"

// Node fill colors.
const (
	ColorRegular    = "#79aec8"
	ColorCrossGroup = "#d9534f"
	ColorReplaced   = "#eeeeee"
)

// Options configures DOT generation.
type Options struct {
	// Name is the digraph identifier.
	Name string
}

// ToDOT converts g to Graphviz DOT source.
func ToDOT(g *graph.Graph, opts Options) string {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", name)

	for _, id := range g.VisibleNodes() {
		fmt.Fprintf(&buf, "    %q [%s];\n", key(id), strings.Join(fmtAttrs(g, id), ", "))
	}

	if !g.HideReplaced() {
		for _, replaced := range g.Replaced() {
			by, _ := g.ReplacedBy(replaced)
			fmt.Fprintf(&buf, "    %q -> %q;\n", key(replaced), key(by))
		}
	}

	for _, e := range g.Edges() {
		if g.IsHidden(e.From) || g.IsHidden(e.To) {
			continue
		}
		fmt.Fprintf(&buf, "    %q -> %q;\n", key(e.From), key(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// key is the DOT node identifier. Neither app labels nor migration names
// contain a slash, so the key is unique.
func key(id migration.RecordID) string {
	return id.App + "/" + id.Name
}

func fmtLabel(g *graph.Graph, id migration.RecordID) string {
	label := id.String()
	if g.IsSquash(id) {
		label += " (squash)"
	}
	if g.IsReplaced(id) {
		label += " (squashed)"
	}
	return label
}

func fmtColor(g *graph.Graph, id migration.RecordID) string {
	switch {
	case g.IsReplaced(id):
		return ColorReplaced
	case g.IsCrossGroup(id):
		return ColorCrossGroup
	default:
		return ColorRegular
	}
}

func fmtAttrs(g *graph.Graph, id migration.RecordID) []string {
	return []string{
		fmt.Sprintf("fillcolor=%q", fmtColor(g, id)),
		`style="filled"`,
		fmt.Sprintf("label=%q", fmtLabel(g, id)),
	}
}
