// Package io exports a migration graph as JSON for tools that do not read
// DOT.
//
// # JSON Format
//
//	{
//	  "nodes": [
//	    {"id": "blog:0001_squashed_0002", "app": "blog", "name": "0001_squashed_0002", "squash": true},
//	    {"id": "shop:0001_initial", "app": "shop", "name": "0001_initial", "cross_group": true}
//	  ],
//	  "edges": [
//	    {"from": "blog:0001_squashed_0002", "to": "shop:0001_initial"}
//	  ],
//	  "replacements": [
//	    {"replaced": "blog:0001_initial", "by": "blog:0001_squashed_0002"}
//	  ]
//	}
//
// Nodes and edges are the ones drawn in the DOT output: replaced migrations
// only appear as nodes when the graph was built with them visible.
// Replacements always list every squashed migration. Edges point from a
// dependency to its dependent, matching the DOT edge direction.
package io
