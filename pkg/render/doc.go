// Package render writes a rendered migration graph to its output file.
//
// # Overview
//
// The graph itself is turned into DOT source by the [dot] subpackage. This
// package decides, from the output file extension alone, whether that source
// is written verbatim or converted into an image:
//
//   - .png, .svg, .jpg, .pdf: image, produced by a [Renderer]
//   - .json: the graph as JSON, written by package io
//   - anything else: DOT text
//
// # Renderers
//
// [ExternalRenderer] pipes the DOT source into the Graphviz `dot` binary and
// captures its standard output. It is the default and supports every image
// format. A missing binary or a non-zero exit status is reported as an
// error; no DOT text is ever written in place of a failed image.
//
// [BuiltinRenderer] renders in-process using a WebAssembly build of Graphviz
// ([github.com/goccy/go-graphviz]) and needs no system install. It supports
// png, svg and jpg.
//
//	r, err := render.NewRenderer(render.RendererDot)
//	err = render.Export(ctx, dot.ToDOT(g, dot.Options{}), "graph.png", r)
//
// [dot]: github.com/matzehuels/squashgraph/pkg/render/dot
package render
