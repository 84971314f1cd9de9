// Package pkg holds the libraries behind the squashgraph command.
//
// # Overview
//
// Squashgraph draws the migration graph of a Django project. Squashed
// migrations are folded into the migration that replaces them, so the
// picture shows the graph Django actually executes. The same graph drives
// two cleanups: rewriting dependencies that still point at squashed
// migrations, and deleting the squashed files once nothing needs them.
//
// # Data Flow
//
//	migration files
//	       ↓  source/django   parse dependencies and replaces
//	[]migration.Record
//	       ↓  graph           collapse squashed migrations, collect notices
//	*graph.Graph
//	       ↓  render/dot, io  DOT or JSON text
//	       ↓  render          optional image via Graphviz
//	output file
//
//	*graph.Graph ──→ patch   rewrite dependencies, delete squashed files
//
// # Packages
//
//   - [migration]: record identities, records and app groups
//   - [graph]: the graph builder and its read-only result
//   - [render/dot]: DOT serialization
//   - [render]: output formats and image renderers
//   - [io]: JSON export
//   - [source/django]: app discovery and migration parsing
//   - [patch]: in-place dependency rewriting and file deletion
//   - [errors]: coded errors and input validation
//   - [buildinfo]: version information
//
// # Example
//
//	loader := django.NewLoader(logger)
//	apps, _ := django.Discover(".")
//	groups := migration.NewGroups("blog", "shop")
//	records, _ := loader.LoadAll(ctx, apps, groups)
//
//	g := graph.Build(records, groups, graph.Options{HideReplaced: true})
//	for _, n := range g.Notices() {
//	    fmt.Println(n.Level, n.Message())
//	}
//	_ = render.Export(ctx, dot.ToDOT(g, dot.Options{}), "migrations.svg", render.ExternalRenderer{})
//
// [migration]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/migration
// [graph]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/graph
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/render/dot
// [render]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/io
// [source/django]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/source/django
// [patch]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/patch
// [errors]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/squashgraph/pkg/buildinfo
package pkg
