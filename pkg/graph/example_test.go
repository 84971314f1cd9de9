package graph_test

import (
	"fmt"

	"github.com/matzehuels/squashgraph/pkg/graph"
	"github.com/matzehuels/squashgraph/pkg/migration"
)

func ExampleBuild() {
	records := []migration.Record{
		{ID: migration.ID("blog", "0001_initial")},
		{ID: migration.ID("blog", "0002_post_slug"),
			Dependencies: []migration.RecordID{migration.ID("blog", "0001_initial")}},
		{ID: migration.ID("blog", "0001_squashed_0002"),
			Replaces: []migration.RecordID{
				migration.ID("blog", "0001_initial"),
				migration.ID("blog", "0002_post_slug"),
			}},
		{ID: migration.ID("blog", "0003_comments"),
			Dependencies: []migration.RecordID{migration.ID("blog", "0002_post_slug")}},
	}

	g := graph.Build(records, migration.NewGroups("blog"), graph.Options{HideReplaced: true})

	for _, e := range g.Edges() {
		if g.IsHidden(e.From) || g.IsHidden(e.To) {
			continue
		}
		fmt.Println(e.From, "->", e.To)
	}
	for _, n := range g.Notices() {
		fmt.Println(n.Level, n.Original, "=>", n.Resolved)
	}
	// Output:
	// blog:0001_squashed_0002 -> blog:0003_comments
	// error blog:0001_initial => blog:0001_squashed_0002
	// success blog:0002_post_slug => blog:0001_squashed_0002
}
